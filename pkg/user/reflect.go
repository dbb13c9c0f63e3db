// SPDX-License-Identifier: MPL-2.0

package user

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ReflectCodec is the generic engine: encoding/json reflection for the wire
// form and tag-driven validation for presence. It exists to be compared
// against DirectCodec, so it must agree with it on every observable result.
type ReflectCodec struct{}

// wireUser is the decode target for the reflect engine. Fields are pointers
// so that presence survives decoding: a key that is absent, or null, leaves
// its pointer nil, and the required tags then reject the record while zero
// values (id 0, age 0, active false) still pass.
type wireUser struct {
	ID     *int64  `json:"id" validate:"required"`
	Name   *string `json:"name" validate:"required"`
	Email  *string `json:"email" validate:"required"`
	Age    *int    `json:"age" validate:"required"`
	Active *bool   `json:"active" validate:"required"`
}

var wireValidate = newWireValidator()

func newWireValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Name implements Codec.
func (ReflectCodec) Name() string { return EngineReflect }

// Encode implements Codec.
func (ReflectCodec) Encode(u User) ([]byte, error) {
	return json.Marshal(u)
}

// EncodeIndent implements Codec.
func (ReflectCodec) EncodeIndent(u User) ([]byte, error) {
	return json.MarshalIndent(u, "", "  ")
}

// Decode implements Codec.
func (ReflectCodec) Decode(data []byte) (User, error) {
	var w wireUser
	if err := json.Unmarshal(data, &w); err != nil {
		return User{}, wireError(err)
	}
	if err := wireValidate.Struct(w); err != nil {
		return User{}, wireError(err)
	}
	return User{ID: *w.ID, Name: *w.Name, Email: *w.Email, Age: *w.Age, Active: *w.Active}, nil
}

// FromMap implements Codec. Construction is driven entirely by the wire
// struct's shape: fields are located by json tag and populated through
// reflection, then presence is checked by the validator.
func (ReflectCodec) FromMap(m map[string]any) (User, error) {
	for key := range m {
		switch key {
		case FieldID, FieldName, FieldEmail, FieldAge, FieldActive:
		default:
			return User{}, &ValidationError{Field: key, Reason: "unknown field"}
		}
	}

	w := reflect.New(reflect.TypeOf(wireUser{})).Elem()
	t := w.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		v, ok := m[name]
		if !ok || v == nil {
			continue // reported as missing by the validator
		}
		ptr := reflect.New(f.Type.Elem())
		if verr := setReflect(ptr.Elem(), name, v); verr != nil {
			return User{}, verr
		}
		w.Field(i).Set(ptr)
	}

	if err := wireValidate.Struct(w.Interface()); err != nil {
		return User{}, wireError(err)
	}
	wu := w.Interface().(wireUser)
	return User{ID: *wu.ID, Name: *wu.Name, Email: *wu.Email, Age: *wu.Age, Active: *wu.Active}, nil
}

// ReflectFields is the generic counterpart of User.Fields: the ordered
// mapping is assembled by walking the struct's fields and json tags through
// reflection. Must return the same Fields as the direct path for every
// record.
func ReflectFields(u User) Fields {
	rv := reflect.ValueOf(u)
	rt := rv.Type()
	f := make(Fields, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		name, _, _ := strings.Cut(rt.Field(i).Tag.Get("json"), ",")
		f = append(f, Field{Name: name, Value: rv.Field(i).Interface()})
	}
	return f
}

// ReflectWith is the generic counterpart of User.With: every non-nil pointer
// field of the patch replaces the user field of the same name through
// reflection. Must return the same record as the direct path.
func ReflectWith(u User, p Patch) User {
	uv := reflect.ValueOf(&u).Elem()
	pv := reflect.ValueOf(p)
	pt := pv.Type()
	for i := 0; i < pt.NumField(); i++ {
		fv := pv.Field(i)
		if fv.IsNil() {
			continue
		}
		uv.FieldByName(pt.Field(i).Name).Set(fv.Elem())
	}
	return u
}

// setReflect coerces v into dst according to dst's kind, using the same value
// coercion rules as the direct engine's setField.
func setReflect(dst reflect.Value, name string, v any) *ValidationError {
	switch dst.Kind() {
	case reflect.Int, reflect.Int64:
		n, ok := int64FromAny(v)
		if !ok || dst.OverflowInt(n) {
			return typeMismatch(name, "integer", v)
		}
		dst.SetInt(n)
	case reflect.String:
		s, ok := v.(string)
		if !ok {
			return typeMismatch(name, "string", v)
		}
		dst.SetString(s)
	case reflect.Bool:
		b, ok := v.(bool)
		if !ok {
			return typeMismatch(name, "bool", v)
		}
		dst.SetBool(b)
	default:
		return typeMismatch(name, dst.Kind().String(), v)
	}
	return nil
}

// wireError maps standard library and validator failures onto the package's
// error taxonomy: syntax problems are ParseError, everything else is
// ValidationError.
func wireError(err error) error {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return &ParseError{Offset: int(syn.Offset), Reason: syn.Error()}
	}
	var typ *json.UnmarshalTypeError
	if errors.As(err, &typ) {
		if typ.Field == "" {
			return &ValidationError{Reason: "cannot decode " + typ.Value + " as user object"}
		}
		return &ValidationError{
			Field:  typ.Field,
			Reason: fmt.Sprintf("cannot decode %s as %s", typ.Value, wantName(typ.Type)),
		}
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fe := verrs[0]
		return &ValidationError{Field: fe.Field(), Reason: "required field is missing"}
	}
	return &ParseError{Reason: err.Error()}
}

// wantName names a decode target type in the same vocabulary the direct
// engine uses in its reasons.
func wantName(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int64:
		return "integer"
	case reflect.Bool:
		return "bool"
	case reflect.String:
		return "string"
	default:
		return t.String()
	}
}
