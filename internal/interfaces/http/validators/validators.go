// Package validators registers the enum rules used in request binding tags.
package validators

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	kbvo "github.com/helpdesk-ai/helpdesk/internal/domain/knowledge/valueobjects"
	vo "github.com/helpdesk-ai/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-ai/helpdesk/internal/shared/utils"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register installs ticket_status, ticket_priority and kb_status on gin's
// binding validator and on utils' validator. Safe to call more than once.
func Register() error {
	registerOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
			return
		}
		utils.UseJSONFieldNames(engine)

		for _, v := range []*validator.Validate{engine, utils.Validator()} {
			if registerErr = registerAll(v); registerErr != nil {
				return
			}
		}
	})
	return registerErr
}

func registerAll(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"ticket_status":   ticketStatus,
		"ticket_priority": ticketPriority,
		"kb_status":       kbStatus,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validator: %w", tag, err)
		}
	}
	return nil
}

func ticketStatus(fl validator.FieldLevel) bool {
	_, err := vo.NewTicketStatus(fl.Field().String())
	return err == nil
}

func ticketPriority(fl validator.FieldLevel) bool {
	_, err := vo.NewPriority(fl.Field().String())
	return err == nil
}

func kbStatus(fl validator.FieldLevel) bool {
	_, err := kbvo.NewDocumentStatus(fl.Field().String())
	return err == nil
}
