package utils

import (
	"context"
	"testing"

	"offerdeck/models"
)

func TestAdminFromContext_Present(t *testing.T) {
	admin := models.AdminInfo{
		ID:    "admin-id",
		Email: "admin@offers-system.com",
		Name:  "Administrator",
	}

	ctx := ContextWithAdmin(context.Background(), admin)

	got, ok := AdminFromContext(ctx)
	if !ok {
		t.Fatal("expected admin to be present in context")
	}
	if got != admin {
		t.Errorf("expected %+v, got %+v", admin, got)
	}
}

func TestAdminFromContext_Absent(t *testing.T) {
	_, ok := AdminFromContext(context.Background())
	if ok {
		t.Error("expected no admin in a fresh context")
	}
}
