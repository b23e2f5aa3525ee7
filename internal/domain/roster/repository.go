package roster

import "context"

type StaffRepository interface {
	Create(ctx context.Context, member StaffMember) (StaffMember, error)
	GetByID(ctx context.Context, id string) (StaffMember, error)
	GetAll(ctx context.Context) ([]StaffMember, error)
	Update(ctx context.Context, req UpdateStaffRequest) (StaffMember, error)
	Delete(ctx context.Context, id string) error
}
