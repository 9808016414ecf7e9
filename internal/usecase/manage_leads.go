package usecase

import (
	"context"

	"github.com/admitly/lead-capture-api/internal/entity"
)

// ManageLeadsUseCase backs the admin surface: listing, lookup, status
// changes and deletion.
type ManageLeadsUseCase struct {
	Repo       entity.LeadRepositoryInterface
	Dispatcher SyncDispatcher
}

func NewManageLeadsUseCase(repo entity.LeadRepositoryInterface, dispatcher SyncDispatcher) *ManageLeadsUseCase {
	return &ManageLeadsUseCase{
		Repo:       repo,
		Dispatcher: dispatcher,
	}
}

func (uc *ManageLeadsUseCase) List(ctx context.Context, input ListLeadsInput) (*ListLeadsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 10
	}

	filter := entity.LeadFilter{
		Status: entity.LeadStatus(input.Status),
		Course: input.Course,
		Search: input.Search,
	}

	leads, err := uc.Repo.List(ctx, filter, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	if leads == nil {
		leads = []entity.Lead{}
	}

	total, err := uc.Repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	pages := total / limit
	if total%limit > 0 {
		pages++
	}

	return &ListLeadsOutput{
		Data: leads,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}

func (uc *ManageLeadsUseCase) Get(ctx context.Context, id int) (*entity.Lead, error) {
	lead, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}
	return lead, nil
}

// UpdateStatus commits the new status, then hands the spreadsheet cell
// update to the dispatcher — only when the lead already has a row
// reference. Leads that were never appended have nothing to propagate.
func (uc *ManageLeadsUseCase) UpdateStatus(ctx context.Context, id int, status entity.LeadStatus) (*entity.Lead, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	lead, err := uc.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}

	if uc.Dispatcher != nil && lead.SheetRow.Synced() {
		uc.Dispatcher.LeadStatusChanged(lead.SheetRow.Number, status)
	}

	return lead, nil
}

// Delete removes the lead. The mirrored sheet row is intentionally left
// behind; rows are never deleted from the spreadsheet.
func (uc *ManageLeadsUseCase) Delete(ctx context.Context, id int) error {
	deleted, err := uc.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrLeadNotFound
	}
	return nil
}
