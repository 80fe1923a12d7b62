package validation

import (
	"testing"

	"github.com/example/oiladmin/pkg/models"
)

// The enum tags delegate to the model predicates, so every model constant
// must pass and anything outside the sets must fail.
func TestEnumTagsMatchModelConstants(t *testing.T) {
	v := New()

	for _, status := range []string{
		models.OrderStatusPending, models.OrderStatusProcessing,
		models.OrderStatusCompleted, models.OrderStatusCancelled,
	} {
		if err := v.Struct(UpdateOrderStatusRequest{Status: status}); err != nil {
			t.Errorf("order status %q rejected: %v", status, err)
		}
	}
	for _, status := range []string{
		models.PaymentStatusPending, models.PaymentStatusPaid, models.PaymentStatusFailed,
	} {
		if err := v.Struct(UpdatePaymentStatusRequest{PaymentStatus: status}); err != nil {
			t.Errorf("payment status %q rejected: %v", status, err)
		}
	}
	for _, status := range []string{
		models.ContactStatusNew, models.ContactStatusContacted, models.ContactStatusArchived,
	} {
		if err := v.Struct(UpdateContactFormRequest{Status: status}); err != nil {
			t.Errorf("contact status %q rejected: %v", status, err)
		}
	}
}

func TestUpdateOrderStatusRequest(t *testing.T) {
	v := New()

	for _, status := range []string{"pending", "processing", "completed", "cancelled"} {
		if err := v.Struct(UpdateOrderStatusRequest{Status: status}); err != nil {
			t.Errorf("expected %q valid, got %v", status, err)
		}
	}
	for _, status := range []string{"", "shipped", "Completed", "paid", "done"} {
		if err := v.Struct(UpdateOrderStatusRequest{Status: status}); err == nil {
			t.Errorf("expected %q to fail validation", status)
		}
	}
}

func TestUpdatePaymentStatusRequest(t *testing.T) {
	v := New()

	for _, status := range []string{"pending", "paid", "failed"} {
		if err := v.Struct(UpdatePaymentStatusRequest{PaymentStatus: status}); err != nil {
			t.Errorf("expected %q valid, got %v", status, err)
		}
	}
	for _, status := range []string{"", "refunded", "Paid", "completed"} {
		if err := v.Struct(UpdatePaymentStatusRequest{PaymentStatus: status}); err == nil {
			t.Errorf("expected %q to fail validation", status)
		}
	}
}

func TestUpdateContactFormRequest(t *testing.T) {
	v := New()

	if err := v.Struct(UpdateContactFormRequest{Status: "contacted"}); err != nil {
		t.Errorf("expected contacted valid, got %v", err)
	}
	if err := v.Struct(UpdateContactFormRequest{Status: "replied"}); err == nil {
		t.Error("expected replied to fail validation")
	}
}

func TestRemoveSliderRequestAllowsIndexZero(t *testing.T) {
	v := New()

	zero := 0
	if err := v.Struct(RemoveSliderRequest{Index: &zero}); err != nil {
		t.Errorf("expected index 0 valid, got %v", err)
	}
	neg := -1
	if err := v.Struct(RemoveSliderRequest{Index: &neg}); err == nil {
		t.Error("expected negative index to fail validation")
	}
	if err := v.Struct(RemoveSliderRequest{}); err == nil {
		t.Error("expected missing index to fail validation")
	}
}

func TestUpsertProductRequest(t *testing.T) {
	v := New()

	req := UpsertProductRequest{
		Brand:    "Raja",
		Category: "Groundnut Oil",
		Types:    []ProductTypePayload{{Name: "1L", Price: "180"}},
	}
	if err := v.Struct(req); err != nil {
		t.Errorf("expected valid, got %v", err)
	}

	req.Types = nil
	if err := v.Struct(req); err == nil {
		t.Error("expected missing types to fail validation")
	}
}
