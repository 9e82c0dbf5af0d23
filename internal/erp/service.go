package erp

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=erp
type Repository interface {
	GetPurchaseOrder(ctx context.Context, number string) (*PurchaseOrder, error)
	GetVendorExact(ctx context.Context, name string) (*Vendor, error)
	GetVendorFold(ctx context.Context, name string) (*Vendor, error)
	GetVendorSubstring(ctx context.Context, name string) (*Vendor, error)
	ListVendors(ctx context.Context) ([]*Vendor, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CheckPO validates that a purchase order exists and is open for invoicing.
func (s *Service) CheckPO(ctx context.Context, poNumber string) (POCheck, error) {
	if poNumber == "" {
		return POCheck{Valid: false, Message: "No PO number provided"}, nil
	}

	po, err := s.repo.GetPurchaseOrder(ctx, strings.ToUpper(poNumber))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return POCheck{Valid: false, Message: fmt.Sprintf("PO %s not found in ERP", poNumber)}, nil
		}

		return POCheck{}, fmt.Errorf("checking po: %w", err)
	}

	if po.Status != POStatusOpen {
		return POCheck{
			Valid:   false,
			Message: fmt.Sprintf("PO %s is %s (cannot accept invoices)", poNumber, po.Status),
			PO:      po,
		}, nil
	}

	return POCheck{Valid: true, Message: "PO validated successfully", PO: po}, nil
}

// LookupVendor resolves an extracted vendor name against master data.
// Matching tiers, in order: exact, case-insensitive, substring in either
// direction, then word-level overlap on significant words.
func (s *Service) LookupVendor(ctx context.Context, vendorName string) (VendorLookup, error) {
	name := strings.TrimSpace(vendorName)
	if name == "" {
		return VendorLookup{Exists: false, Message: "No vendor name provided"}, nil
	}

	lookups := []func(context.Context, string) (*Vendor, error){
		s.repo.GetVendorExact,
		s.repo.GetVendorFold,
		s.repo.GetVendorSubstring,
	}

	for _, lookup := range lookups {
		v, err := lookup(ctx, name)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}

			return VendorLookup{}, fmt.Errorf("looking up vendor: %w", err)
		}

		return VendorLookup{Exists: true, Name: v.Name, Vendor: v}, nil
	}

	v, err := s.wordOverlap(ctx, name)
	if err != nil {
		return VendorLookup{}, err
	}

	if v != nil {
		return VendorLookup{Exists: true, Name: v.Name, Vendor: v}, nil
	}

	return VendorLookup{
		Exists:  false,
		Message: fmt.Sprintf("Vendor %q not found in ERP master data", vendorName),
	}, nil
}

// wordOverlap matches when any significant word (longer than 3 characters)
// of the extracted name appears in a master record's name.
func (s *Service) wordOverlap(ctx context.Context, name string) (*Vendor, error) {
	vendors, err := s.repo.ListVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing vendors: %w", err)
	}

	words := significantWords(name)
	if len(words) == 0 {
		return nil, nil
	}

	for _, v := range vendors {
		for w := range significantWords(v.Name) {
			if _, ok := words[w]; ok {
				return v, nil
			}
		}
	}

	return nil, nil
}

func significantWords(name string) map[string]struct{} {
	words := make(map[string]struct{})

	for _, w := range strings.Fields(strings.ToLower(name)) {
		if len(w) > 3 {
			words[w] = struct{}{}
		}
	}

	return words
}
