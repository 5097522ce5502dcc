package utils

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validatorOnce sync.Once
	validate      *validator.Validate
	translator    ut.Translator
)

// InitValidator configures gin's validator engine once: error field names
// follow json tags and messages are rendered in English. It is safe to call
// more than once.
func InitValidator() *validator.Validate {
	validatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			v = validator.New()
			v.SetTagName("binding")
		}
		v.RegisterTagNameFunc(jsonFieldName)

		english := en.New()
		uni := ut.New(english, english)
		translator, _ = uni.GetTranslator("en")
		if err := en_translations.RegisterDefaultTranslations(v, translator); err != nil {
			panic(err)
		}
		validate = v
	})
	return validate
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// Validate performs validation on a struct using its `binding` tags.
func Validate(s interface{}) error {
	return InitValidator().Struct(s)
}

// ValidationDetails maps each failing field (by json name) to a readable
// message. It returns nil when err is not a validation error.
func ValidationDetails(err error) map[string]string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}
	InitValidator()

	details := make(map[string]string, len(errs))
	for _, e := range errs {
		details[e.Field()] = e.Translate(translator)
	}
	return details
}

// FormatValidationError formats validation errors into a readable string.
func FormatValidationError(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}
	InitValidator()

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Translate(translator))
	}
	return strings.Join(messages, ", ")
}

// BindJSON decodes the request body into obj. Field validation is left to
// the caller, which validates after normalizing. On malformed JSON or a
// type mismatch it sends a BadRequest response and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if c.Request.Body == nil {
		BadRequest(c, "Invalid request payload: empty body")
		return false
	}
	if err := json.NewDecoder(c.Request.Body).Decode(obj); err != nil {
		if errors.Is(err, io.EOF) {
			BadRequest(c, "Invalid request payload: empty body")
			return false
		}
		BadRequest(c, "Invalid request payload: "+err.Error())
		return false
	}
	return true
}
