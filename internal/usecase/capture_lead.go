package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/admitly/lead-capture-api/internal/entity"
)

type CaptureLeadUseCase struct {
	Repo       entity.LeadRepositoryInterface
	Dispatcher SyncDispatcher
}

func NewCaptureLeadUseCase(repo entity.LeadRepositoryInterface, dispatcher SyncDispatcher) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{
		Repo:       repo,
		Dispatcher: dispatcher,
	}
}

// Execute persists the lead synchronously, then hands the sheet sync to
// the dispatcher. The caller gets the stored lead back before any
// spreadsheet work happens; a duplicate email never reaches the sheet.
func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*entity.Lead, error) {
	if validationErrors := ValidateCaptureLeadInput(input); len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for i, e := range validationErrors {
			if i > 0 {
				errMsg += ", "
			}
			errMsg += e.Field + " (" + e.Message + ")"
		}
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: errMsg,
		}
	}

	now := time.Now()
	lead := &entity.Lead{
		Name:      sanitizeInput(input.Name),
		Email:     strings.ToLower(sanitizeInput(input.Email)),
		Phone:     sanitizeInput(input.Phone),
		Course:    sanitizeInput(input.Course),
		College:   sanitizeInput(input.College),
		Year:      sanitizeInput(input.Year),
		Status:    entity.StatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		if errors.Is(err, entity.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	if uc.Dispatcher != nil {
		uc.Dispatcher.LeadCreated(lead)
	}

	return lead, nil
}
