package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

// requestValidator checks request DTOs by their `validate` tags and reports
// failures under their JSON field names.
type requestValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func newRequestValidator() (*requestValidator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &requestValidator{validate: validate, trans: trans}, nil
}

// mustRequestValidator panics when the built-in translations fail to
// register, which only happens on a broken validator build.
func mustRequestValidator() *requestValidator {
	v, err := newRequestValidator()
	if err != nil {
		panic(err)
	}
	return v
}

// Struct validates dst and converts failures into a *domain.ValidationError.
func (v *requestValidator) Struct(dst any) error {
	err := v.validate.Struct(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("rest.validate: %w", err)
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: fe.Translate(v.trans),
		})
	}
	return domain.NewValidationErrors(fields)
}

// fieldPath drops the struct name from a validator namespace:
// "submitQuizRequest.answers[0].answer" becomes "answers[0].answer".
func fieldPath(ns string) string {
	if _, tail, ok := strings.Cut(ns, "."); ok {
		return tail
	}
	return ns
}

var defaultValidator = mustRequestValidator()

// decodeJSON reads a JSON body into dst and validates it. An empty body is
// treated as an empty object so optional-body endpoints accept bare POSTs.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.NewValidationError("body", "request body too large")
		}
		return domain.NewValidationError("body", "invalid JSON")
	}

	return defaultValidator.Struct(dst)
}
