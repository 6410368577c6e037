package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/order"
)

func TestImportParserParse(t *testing.T) {
	parser := NewImportParser()

	t.Run("canonical headers", func(t *testing.T) {
		csvData := strings.Join([]string{
			"customer_name,customer_phone,delivery_address,product_description,delivery_city,delivery_postal_code,total_weight_kg,is_cod,cod_amount,priority,scheduled_date,package_count",
			"Asha Rao,+919900112233,12 MG Road,Books,Bengaluru,560001,2.5,yes,499.00,urgent,2026-09-05,3",
		}, "\n")

		drafts, rowErrors, err := parser.Parse(strings.NewReader(csvData))
		require.NoError(t, err)
		require.Empty(t, rowErrors)
		require.Len(t, drafts, 1)

		d := drafts[0]
		assert.Equal(t, 2, d.Row)
		assert.Equal(t, "Asha Rao", d.Details.CustomerName)
		assert.Equal(t, "Bengaluru", d.Details.City)
		assert.Equal(t, "560001", d.Details.PostalCode)
		assert.Equal(t, 3, d.Details.PackageCount)
		require.NotNil(t, d.Details.TotalWeightKG)
		assert.InDelta(t, 2.5, *d.Details.TotalWeightKG, 0.001)
		assert.True(t, d.Payment.IsCOD)
		assert.InDelta(t, 499.0, d.Payment.CODAmount, 0.001)
		assert.Equal(t, order.PriorityUrgent, d.Priority)
		require.NotNil(t, d.ScheduledDate)
		assert.Equal(t, time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), *d.ScheduledDate)
	})

	t.Run("aliased headers", func(t *testing.T) {
		csvData := strings.Join([]string{
			"Name,Mobile,Address,Item,Pincode,Weight,AWB",
			"Asha Rao,+919900112233,12 MG Road,Books,560001,1.2,AWB-42",
		}, "\n")

		drafts, rowErrors, err := parser.Parse(strings.NewReader(csvData))
		require.NoError(t, err)
		require.Empty(t, rowErrors)
		require.Len(t, drafts, 1)

		d := drafts[0]
		assert.Equal(t, "Asha Rao", d.Details.CustomerName)
		assert.Equal(t, "+919900112233", d.Details.CustomerPhone)
		assert.Equal(t, "560001", d.Details.PostalCode)
		assert.Equal(t, "AWB-42", d.Details.SellerOrderRef)
		require.NotNil(t, d.Details.TotalWeightKG)
	})

	t.Run("broken rows are reported and skipped", func(t *testing.T) {
		csvData := strings.Join([]string{
			"customer_name,customer_phone,delivery_address,product_description,total_weight_kg",
			"Asha Rao,+919900112233,12 MG Road,Books,1.0",
			"Vikram Shah,,5 Church Street,Pens,2.0",
			"Meera Iyer,+919911223344,9 Brigade Road,Lamps,heavy",
			"Rohan Das,+919922334455,3 Residency Road,Mugs,0.5",
		}, "\n")

		drafts, rowErrors, err := parser.Parse(strings.NewReader(csvData))
		require.NoError(t, err)
		require.Len(t, drafts, 2)
		require.Len(t, rowErrors, 2)

		assert.Equal(t, 3, rowErrors[0].Row)
		assert.Contains(t, rowErrors[0].Message, "customer_phone is required")
		assert.Equal(t, 4, rowErrors[1].Row)
		assert.Contains(t, rowErrors[1].Message, "total_weight_kg")
	})

	t.Run("defaults", func(t *testing.T) {
		csvData := strings.Join([]string{
			"customer_name,customer_phone,delivery_address,product_description",
			"Asha Rao,+919900112233,12 MG Road,Books",
		}, "\n")

		drafts, rowErrors, err := parser.Parse(strings.NewReader(csvData))
		require.NoError(t, err)
		require.Empty(t, rowErrors)
		require.Len(t, drafts, 1)

		d := drafts[0]
		assert.Equal(t, 1, d.Details.PackageCount)
		assert.Equal(t, order.PriorityNormal, d.Priority)
		assert.Nil(t, d.Details.TotalWeightKG)
		assert.False(t, d.Payment.IsCOD)
	})

	t.Run("empty stream", func(t *testing.T) {
		drafts, rowErrors, err := parser.Parse(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, drafts)
		assert.Empty(t, rowErrors)
	})
}
