package school

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/hay-kot/criterio"
)

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("is required")
	}
	return nil
}

func optionalEmail(s string) error {
	if s == "" {
		return nil
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return fmt.Errorf("invalid email %q", s)
	}
	return nil
}

func positive(n int64) error {
	if n <= 0 {
		return errors.New("must be greater than zero")
	}
	return nil
}

func numberField(field string, n int64) error {
	if err := positive(n); err != nil {
		return criterio.NewFieldErrors(field, err)
	}
	return nil
}

// Validate checks the fields a student record needs before it is saved.
func (s Student) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("first_name", s.FirstName, required),
		criterio.Run("last_name", s.LastName, required),
		criterio.Run("class_id", s.ClassID, required),
		criterio.Run("email", s.Email, optionalEmail),
	)
}

func (t Teacher) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("name", t.Name, required),
		criterio.Run("email", t.Email, optionalEmail),
	)
}

func (c Class) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("name", c.Name, required),
		numberField("capacity", int64(c.Capacity)),
	)
}

func (p Payment) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("student_id", p.StudentID, required),
		numberField("amount", p.Amount),
		criterio.Run("method", p.Method, required),
	)
}

func (e Event) Validate() error {
	var errs criterio.FieldErrorsBuilder
	if err := required(e.Title); err != nil {
		errs = errs.Append("title", err)
	}
	if e.Start.IsZero() {
		errs = errs.Append("start", errors.New("is required"))
	}
	if !e.End.IsZero() && e.End.Before(e.Start) {
		errs = errs.Append("end", errors.New("must not be before start"))
	}
	return errs.ToError()
}
