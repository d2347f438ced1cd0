package tools

import (
	"context"
	"fmt"
	"regexp"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?1?-?\.?\s?\(?(\d{3})\)?[-.\s]?(\d{3})[-.\s]?(\d{4})$`)
	urlPattern   = regexp.MustCompile(`^https?://(www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_+.~#?&/=]*)$`)
)

type validationRule struct {
	pattern *regexp.Regexp
	subject string
}

var validationRules = map[string]validationRule{
	"email": {pattern: emailPattern, subject: "Email address"},
	"phone": {pattern: phonePattern, subject: "Phone number"},
	"url":   {pattern: urlPattern, subject: "URL"},
}

type ValidatorHandler struct{}

func NewValidatorHandler() *ValidatorHandler {
	return &ValidatorHandler{}
}

func (h *ValidatorHandler) ExecuteTool(ctx context.Context, input domain.ToolInput) (map[string]any, error) {
	data := getString(input.Input, "data", "")
	validationType := getString(input.Input, "type", "email")

	isValid := false
	message := "Unknown validation type"

	if rule, ok := validationRules[validationType]; ok {
		isValid = rule.pattern.MatchString(data)

		verdict := "invalid"
		if isValid {
			verdict = "valid"
		}

		message = fmt.Sprintf("%s is %s", rule.subject, verdict)
	}

	return map[string]any{
		"data":            data,
		"validation_type": validationType,
		"is_valid":        isValid,
		"message":         message,
	}, nil
}
