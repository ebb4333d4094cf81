package middleware

import (
	"testing"

	"github.com/google/uuid"

	"github.com/example/brasserie/internal/models"
)

func TestOwnerOrAdmin(t *testing.T) {
	ownerID := uuid.New()

	owner := &models.User{Role: models.RoleUser}
	owner.ID = ownerID

	stranger := &models.User{Role: models.RoleUser}
	stranger.ID = uuid.New()

	admin := &models.User{Role: models.RoleAdmin}
	admin.ID = uuid.New()

	tests := []struct {
		name string
		user *models.User
		want bool
	}{
		{"owner", owner, true},
		{"admin", admin, true},
		{"stranger", stranger, false},
		{"nil user", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OwnerOrAdmin(tt.user, ownerID); got != tt.want {
				t.Fatalf("OwnerOrAdmin = %v, want %v", got, tt.want)
			}
		})
	}
}
