package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/de-tools/market-atlas/pkg/models/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateConfig checks a report configuration before it is handed to the pipeline.
func ValidateConfig(cfg domain.ReportConfig) error {
	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("%w: %v", ErrConfiguration, err)
		}
		for _, fe := range fieldErrs {
			if strings.HasPrefix(fe.StructNamespace(), "ReportConfig.Weights") {
				return fmt.Errorf("%w: %s failed on '%s'", ErrInvalidWeights, fe.Namespace(), fe.Tag())
			}
		}
		fe := fieldErrs[0]
		return fmt.Errorf("%w: %s failed on '%s'", ErrConfiguration, fe.Namespace(), fe.Tag())
	}

	if total := cfg.Weights.Total(); total != 100 {
		return fmt.Errorf("%w: percentages sum to %d, expected 100", ErrInvalidWeights, total)
	}
	return nil
}
