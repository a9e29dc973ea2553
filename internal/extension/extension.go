package extension

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rsxdalv/ttsext/internal/generator"
)

const (
	// Namespace is the Python namespace package every extension lives in.
	Namespace = "tts_webui_extension"

	// DefaultAttribution stands in for the GitHub account when none is given.
	DefaultAttribution = "username_missing"
)

var (
	// ErrMissingIdentifier is returned for an empty extension name.
	ErrMissingIdentifier = errors.New("extension name is required")

	// ErrInvalidIdentifier is returned when the name is not a Python identifier.
	ErrInvalidIdentifier = errors.New("extension name must be a valid Python identifier (letters, numbers, underscores, cannot start with number)")
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
		return identifierPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Extension holds the values every template is rendered from.
type Extension struct {
	Identifier  string `validate:"required,identifier"`
	Attribution string
	Year        int
}

// New validates identifier and returns the extension. An empty
// attribution falls back to DefaultAttribution.
func New(identifier, attribution string) (*Extension, error) {
	if err := ValidateIdentifier(identifier); err != nil {
		return nil, err
	}

	if attribution == "" {
		attribution = DefaultAttribution
	}

	return &Extension{
		Identifier:  identifier,
		Attribution: attribution,
		Year:        time.Now().Year(),
	}, nil
}

// ValidateIdentifier reports whether identifier can name an extension.
func ValidateIdentifier(identifier string) error {
	err := validate.Struct(&Extension{Identifier: identifier})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return ErrMissingIdentifier
			}
		}
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, identifier)
	}
	return err
}

// Namespace returns the namespace package name; templates use it.
func (e *Extension) Namespace() string {
	return Namespace
}

// PackageName is the distribution name, also the target directory name.
func (e *Extension) PackageName() string {
	return Namespace + "." + e.Identifier
}

// DisplayName upper-cases the first letter and turns underscores into
// spaces: my_tool becomes "My tool".
func (e *Extension) DisplayName() string {
	return strings.ReplaceAll(generator.Capitalize(e.Identifier), "_", " ")
}

// UIFunction is the name of the generated gradio UI builder.
func (e *Extension) UIFunction() string {
	return e.Identifier + "_ui"
}

// RepositoryURL is the GitHub URL the extension is expected to live at.
func (e *Extension) RepositoryURL() string {
	return fmt.Sprintf("https://github.com/%s/%s", e.Attribution, e.PackageName())
}

// Requirement is the pip requirement the host installs the extension with.
func (e *Extension) Requirement() string {
	return "git+" + e.RepositoryURL() + "@main"
}
