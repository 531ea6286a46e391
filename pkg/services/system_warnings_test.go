package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemWarningsService(t *testing.T) {
	t.Run("adds and lists warnings", func(t *testing.T) {
		svc := NewSystemWarningsService()

		id := svc.AddWarning(WarningCategoryProviderHealth, "provider unreachable", "connect: refused", "openai")
		assert.NotEmpty(t, id)

		warnings := svc.GetWarnings()
		require.Len(t, warnings, 1)
		assert.Equal(t, WarningCategoryProviderHealth, warnings[0].Category)
		assert.Equal(t, "openai", warnings[0].ProviderID)
	})

	t.Run("replaces warning with same category and provider", func(t *testing.T) {
		svc := NewSystemWarningsService()

		svc.AddWarning(WarningCategoryProviderHealth, "first", "", "openai")
		svc.AddWarning(WarningCategoryProviderHealth, "second", "", "openai")

		warnings := svc.GetWarnings()
		require.Len(t, warnings, 1)
		assert.Equal(t, "second", warnings[0].Message)
	})

	t.Run("keeps warnings for distinct providers", func(t *testing.T) {
		svc := NewSystemWarningsService()

		svc.AddWarning(WarningCategoryProviderHealth, "a", "", "openai")
		svc.AddWarning(WarningCategoryProviderHealth, "b", "", "anthropic")

		assert.Len(t, svc.GetWarnings(), 2)
	})

	t.Run("clears by provider ID", func(t *testing.T) {
		svc := NewSystemWarningsService()

		svc.AddWarning(WarningCategoryProviderHealth, "down", "", "openai")
		assert.True(t, svc.ClearByProviderID(WarningCategoryProviderHealth, "openai"))
		assert.False(t, svc.ClearByProviderID(WarningCategoryProviderHealth, "openai"))
		assert.Empty(t, svc.GetWarnings())
	})
}
