package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCustomerStartsWithEmptyInvoices(t *testing.T) {
	t.Parallel()

	customer := NewCustomer("John", "Smith", "jsmith")

	assert.NotNil(t, customer.Invoices, "invoices should serialize as [] not null")
	assert.Empty(t, customer.Invoices)
	assert.True(t, customer.ID.IsZero(), "document ID is assigned by the store")
}

func TestNewTeamStartsWithEmptyRoster(t *testing.T) {
	t.Parallel()

	team := NewTeam("Mud Hens", "Muddy")

	assert.NotNil(t, team.Players, "players should serialize as [] not null")
	assert.Empty(t, team.Players)
}
