package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/imports"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/order"
)

// Column aliases accepted for each logical field, matched case-insensitively
// against trimmed header names.
var requiredAliases = map[string][]string{
	"customer_name":       {"customer_name", "customer name", "name", "recipient_name", "recipient name"},
	"customer_phone":      {"customer_phone", "customer phone", "phone", "mobile", "contact"},
	"delivery_address":    {"delivery_address", "delivery address", "address", "drop_address", "drop address"},
	"product_description": {"product_description", "product description", "product", "item", "items", "description"},
}

var optionalAliases = map[string][]string{
	"customer_email":       {"customer_email", "customer email", "email"},
	"customer_alt_phone":   {"customer_alt_phone", "alt_phone", "alternate phone"},
	"delivery_city":        {"delivery_city", "city"},
	"delivery_state":       {"delivery_state", "state"},
	"delivery_postal_code": {"delivery_postal_code", "postal_code", "pincode", "zip"},
	"seller_name":          {"seller_name", "seller", "vendor"},
	"seller_order_ref":     {"seller_order_ref", "order_ref", "awb", "reference", "order_id"},
	"marketplace":          {"marketplace", "channel", "source_marketplace"},
	"product_sku":          {"product_sku", "sku"},
	"product_category":     {"product_category", "category"},
	"package_count":        {"package_count", "packages", "qty", "quantity"},
	"total_weight_kg":      {"total_weight_kg", "weight", "weight_kg"},
	"total_volume_cft":     {"total_volume_cft", "volume", "volume_cft"},
	"is_cod":               {"is_cod", "cod", "payment_mode"},
	"cod_amount":           {"cod_amount", "cod_value"},
	"declared_value":       {"declared_value", "value", "order_value"},
	"priority":             {"priority"},
	"scheduled_date":       {"scheduled_date", "delivery_date", "date"},
	"delivery_slot":        {"delivery_slot", "slot", "time_slot"},
}

// OrderDraft is one successfully parsed CSV row, ready to become an order.
type OrderDraft struct {
	Row           int
	Details       order.Details
	Payment       order.Payment
	Priority      order.Priority
	ScheduledDate *time.Time
	DeliverySlot  string
}

// ImportParser turns a CSV stream into order drafts. Every row is parsed
// independently; a broken row is reported and skipped, never aborting the
// file.
type ImportParser struct{}

func NewImportParser() *ImportParser {
	return &ImportParser{}
}

// Parse reads the whole stream. Row numbers in drafts and errors are
// 1-based counting the header row, so the first data row is row 2.
func (p *ImportParser) Parse(r io.Reader) ([]OrderDraft, []imports.RowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var (
		drafts    []OrderDraft
		rowErrors []imports.RowError
	)
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			rowErrors = append(rowErrors, imports.RowError{Row: rowNum, Message: err.Error()})
			continue
		}

		draft, err := p.parseRow(columns, record, rowNum)
		if err != nil {
			rowErrors = append(rowErrors, imports.RowError{Row: rowNum, Message: err.Error()})
			continue
		}
		drafts = append(drafts, draft)
	}

	return drafts, rowErrors, nil
}

func (p *ImportParser) parseRow(columns map[string]int, record []string, rowNum int) (OrderDraft, error) {
	find := func(aliases []string) string {
		for _, alias := range aliases {
			if i, ok := columns[alias]; ok && i < len(record) {
				if v := strings.TrimSpace(record[i]); v != "" {
					return v
				}
			}
		}
		return ""
	}

	draft := OrderDraft{Row: rowNum, Priority: order.PriorityNormal}
	draft.Details.CustomerName = find(requiredAliases["customer_name"])
	draft.Details.CustomerPhone = find(requiredAliases["customer_phone"])
	draft.Details.AddressLine = find(requiredAliases["delivery_address"])
	draft.Details.ProductDescription = find(requiredAliases["product_description"])

	for _, required := range []struct {
		field string
		value string
	}{
		{"customer_name", draft.Details.CustomerName},
		{"customer_phone", draft.Details.CustomerPhone},
		{"delivery_address", draft.Details.AddressLine},
		{"product_description", draft.Details.ProductDescription},
	} {
		if required.value == "" {
			return OrderDraft{}, fmt.Errorf("%s is required", required.field)
		}
	}

	draft.Details.CustomerEmail = find(optionalAliases["customer_email"])
	draft.Details.CustomerAltPhone = find(optionalAliases["customer_alt_phone"])
	draft.Details.City = find(optionalAliases["delivery_city"])
	draft.Details.State = find(optionalAliases["delivery_state"])
	draft.Details.PostalCode = find(optionalAliases["delivery_postal_code"])
	draft.Details.SellerName = find(optionalAliases["seller_name"])
	draft.Details.SellerOrderRef = find(optionalAliases["seller_order_ref"])
	draft.Details.Marketplace = find(optionalAliases["marketplace"])
	draft.Details.ProductSKU = find(optionalAliases["product_sku"])
	draft.Details.ProductCategory = find(optionalAliases["product_category"])
	draft.DeliverySlot = find(optionalAliases["delivery_slot"])

	draft.Details.PackageCount = 1
	if v := find(optionalAliases["package_count"]); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return OrderDraft{}, fmt.Errorf("package_count %q is not a number", v)
		}
		draft.Details.PackageCount = n
	}

	var err error
	if draft.Details.TotalWeightKG, err = parseOptionalFloat("total_weight_kg", find(optionalAliases["total_weight_kg"])); err != nil {
		return OrderDraft{}, err
	}
	if draft.Details.TotalVolumeCFT, err = parseOptionalFloat("total_volume_cft", find(optionalAliases["total_volume_cft"])); err != nil {
		return OrderDraft{}, err
	}
	if draft.Details.DeclaredValue, err = parseOptionalFloat("declared_value", find(optionalAliases["declared_value"])); err != nil {
		return OrderDraft{}, err
	}
	if v := find(optionalAliases["cod_amount"]); v != "" {
		amount, err := parseOptionalFloat("cod_amount", v)
		if err != nil {
			return OrderDraft{}, err
		}
		draft.Payment.CODAmount = *amount
	}

	if v := find(optionalAliases["is_cod"]); v != "" {
		switch strings.ToLower(v) {
		case "true", "yes", "1", "cod":
			draft.Payment.IsCOD = true
		}
	}

	if v := find(optionalAliases["priority"]); v != "" {
		priority := order.Priority(strings.ToLower(v))
		if err := priority.Validate(); err != nil {
			return OrderDraft{}, fmt.Errorf("priority %q is not one of urgent, normal, low", v)
		}
		draft.Priority = priority
	}

	if v := find(optionalAliases["scheduled_date"]); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			return OrderDraft{}, fmt.Errorf("scheduled_date %q is not a YYYY-MM-DD date", v)
		}
		draft.ScheduledDate = &d
	}

	return draft, nil
}

func parseOptionalFloat(field, value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("%s %q is not a number", field, value)
	}
	return &f, nil
}
