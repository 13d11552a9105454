// This file is part of vgablur.
//
// vgablur is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vgablur is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vgablur.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/vgablur/curated"
)

// Value represents the actual Go preference value.
type Value interface{}

// CannotConvert is returned by Set() when the value cannot be converted to
// the preference type.
const CannotConvert = "prefs: cannot convert %T to %s"

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// value is the storage and hook mechanism shared by all the preference
// types.
type value[T any] struct {
	v        atomic.Value
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

func (p *value[T]) load() (T, bool) {
	v, ok := p.v.Load().(T)
	return v, ok
}

func (p *value[T]) store(nv T) error {
	if p.hookPre != nil {
		if err := p.hookPre(nv); err != nil {
			return err
		}
	}

	p.v.Store(nv)

	if p.hookPost != nil {
		if err := p.hookPost(nv); err != nil {
			return err
		}
	}

	return nil
}

// SetHookPre sets the callback function to be called just before the
// preference value is updated. The callback can prevent the update by
// returning an error. The callback is called even if the value hasn't
// changed.
func (p *value[T]) SetHookPre(f func(value Value) error) {
	p.hookPre = f
}

// SetHookPost sets the callback function to be called just after the
// preference value is updated. The callback is called even if the value
// hasn't changed.
func (p *value[T]) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	value[bool]
}

func (p *Bool) String() string {
	v, _ := p.load()
	return strconv.FormatBool(v)
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(v)
	case string:
		return p.store(strings.ToLower(strings.TrimSpace(v)) == "true")
	}
	return curated.Errorf(CannotConvert, v, "prefs.Bool")
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	v, _ := p.load()
	return v
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// Int implements an integer type in the prefs system.
type Int struct {
	value[int]
}

func (p *Int) String() string {
	v, _ := p.load()
	return strconv.Itoa(v)
}

// Set new value to Int type. New value can be an int or a string.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(v)
	case int32:
		return p.store(int(v))
	case int64:
		return p.store(int(v))
	case uint32:
		return p.store(int(v))
	case string:
		// base zero allows hex values, which is convenient for colours
		n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 64)
		if err != nil {
			return curated.Errorf(CannotConvert, v, "prefs.Int")
		}
		return p.store(int(n))
	}
	return curated.Errorf(CannotConvert, v, "prefs.Int")
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	v, _ := p.load()
	return v
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// Float implements a floating-point type in the prefs system.
type Float struct {
	value[float64]
}

func (p *Float) String() string {
	v, _ := p.load()
	return fmt.Sprintf("%.3f", v)
}

// Set new value to Float type. New value can be a float, an int or a string.
func (p *Float) Set(v Value) error {
	switch v := v.(type) {
	case float64:
		return p.store(v)
	case float32:
		return p.store(float64(v))
	case int:
		return p.store(float64(v))
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return curated.Errorf(CannotConvert, v, "prefs.Float")
		}
		return p.store(f)
	}
	return curated.Errorf(CannotConvert, v, "prefs.Float")
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	v, _ := p.load()
	return v
}

// Reset sets the float value to zero.
func (p *Float) Reset() error {
	return p.Set(0.0)
}

// String implements a string type in the prefs system.
type String struct {
	value[string]
	maxLen int
}

func (p *String) String() string {
	v, _ := p.load()
	return v
}

// SetMaxLen sets the maximum length for a string. A value of zero or less
// means there is no limit. The existing string will be cropped if necessary.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
	if v, ok := p.load(); ok && p.maxLen > 0 && len(v) > p.maxLen {
		p.v.Store(v[:p.maxLen])
	}
}

// Set new value to String type. Values of any type will be converted to a
// string.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)
	if p.maxLen > 0 && len(nv) > p.maxLen {
		nv = nv[:p.maxLen]
	}
	return p.store(nv)
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.String()
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}
