// This file is part of ALE2600.
//
// ALE2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ALE2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ALE2600.  If not, see <https://www.gnu.org/licenses/>.

package settings

import (
	"fmt"
	"strconv"
	"strings"
)

// Value represents the actual Go value of a setting.
type Value any

// types supported by the settings system must implement the setting interface.
type setting interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
}

// Bool implements a boolean type in the settings system.
type Bool struct {
	value bool
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.value)
}

// Set new value to Bool type. New value must be of type bool or string. A
// string must be one of the forms accepted by strconv.ParseBool().
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		var err error
		nv, err = strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("cannot convert %q to a bool", v)
		}
	default:
		return fmt.Errorf("cannot convert %T to a bool", v)
	}

	p.value = nv
	return nil
}

// Get returns the raw setting value.
func (p *Bool) Get() Value {
	return p.value
}

// String implements a string type in the settings system.
type String struct {
	value string
}

func (p *String) String() string {
	return p.value
}

// Set new value to String type. Values of any type are formatted with the %v
// verb.
func (p *String) Set(v Value) error {
	nv := strings.TrimSpace(fmt.Sprintf("%v", v))

	p.value = nv
	return nil
}

// Get returns the raw setting value.
func (p *String) Get() Value {
	return p.value
}

// Int implements an integer type in the settings system.
type Int struct {
	value int
}

func (p *Int) String() string {
	return strconv.Itoa(p.value)
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case string:
		var err error
		nv, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("cannot convert %q to an int", v)
		}
	default:
		return fmt.Errorf("cannot convert %T to an int", v)
	}

	p.value = nv
	return nil
}

// Get returns the raw setting value.
func (p *Int) Get() Value {
	return p.value
}

// Float implements a floating point type in the settings system.
type Float struct {
	value float64
}

func (p *Float) String() string {
	return strconv.FormatFloat(p.value, 'f', -1, 64)
}

// Set new value to Float type. New value can be a float64, an int or a string.
func (p *Float) Set(v Value) error {
	var nv float64
	switch v := v.(type) {
	case float64:
		nv = v
	case int:
		nv = float64(v)
	case string:
		var err error
		nv, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("cannot convert %q to a float", v)
		}
	default:
		return fmt.Errorf("cannot convert %T to a float", v)
	}

	p.value = nv
	return nil
}

// Get returns the raw setting value.
func (p *Float) Get() Value {
	return p.value
}

