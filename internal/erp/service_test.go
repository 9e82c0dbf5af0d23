package erp_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/xyloai/xylo/internal/erp"
)

func TestService_CheckPO(t *testing.T) {
	openPO := &erp.PurchaseOrder{
		Number: "PO-1001",
		Vendor: "Acme Corp",
		Budget: decimal.NewFromInt(15000),
		Status: erp.POStatusOpen,
	}

	type testCase struct {
		name      string
		poNumber  string
		setupMock func(m *erp.MockRepository)
		wantValid bool
		wantMsg   string
	}

	tests := []testCase{
		{
			name:      "EmptyNumber",
			poNumber:  "",
			wantValid: false,
			wantMsg:   "No PO number provided",
		},
		{
			name:     "OpenPO",
			poNumber: "po-1001",
			setupMock: func(m *erp.MockRepository) {
				m.EXPECT().
					GetPurchaseOrder(gomock.Any(), "PO-1001").
					Return(openPO, nil)
			},
			wantValid: true,
			wantMsg:   "PO validated successfully",
		},
		{
			name:     "ClosedPO",
			poNumber: "PO-3321",
			setupMock: func(m *erp.MockRepository) {
				m.EXPECT().
					GetPurchaseOrder(gomock.Any(), "PO-3321").
					Return(&erp.PurchaseOrder{Number: "PO-3321", Status: erp.POStatusClosed}, nil)
			},
			wantValid: false,
			wantMsg:   "PO PO-3321 is CLOSED (cannot accept invoices)",
		},
		{
			name:     "UnknownPO",
			poNumber: "PO-404",
			setupMock: func(m *erp.MockRepository) {
				m.EXPECT().
					GetPurchaseOrder(gomock.Any(), "PO-404").
					Return(nil, erp.ErrNotFound)
			},
			wantValid: false,
			wantMsg:   "PO PO-404 not found in ERP",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := erp.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := erp.NewService(repo)
			check, err := svc.CheckPO(context.Background(), tt.poNumber)

			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, check.Valid)
			assert.Equal(t, tt.wantMsg, check.Message)
		})
	}
}

func TestService_LookupVendor(t *testing.T) {
	flipkart := &erp.Vendor{ID: "V-201", Name: "Flipkart India Private Limited", RiskScore: 2}

	t.Run("ExactMatchShortCircuits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := erp.NewMockRepository(ctrl)
		repo.EXPECT().
			GetVendorExact(gomock.Any(), "Acme Corp").
			Return(&erp.Vendor{ID: "V-101", Name: "Acme Corp"}, nil)

		svc := erp.NewService(repo)
		lookup, err := svc.LookupVendor(context.Background(), "Acme Corp")

		require.NoError(t, err)
		assert.True(t, lookup.Exists)
		assert.Equal(t, "Acme Corp", lookup.Name)
	})

	t.Run("FallsThroughToWordOverlap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := erp.NewMockRepository(ctrl)
		repo.EXPECT().GetVendorExact(gomock.Any(), "Flipkart Internet Services").Return(nil, erp.ErrNotFound)
		repo.EXPECT().GetVendorFold(gomock.Any(), "Flipkart Internet Services").Return(nil, erp.ErrNotFound)
		repo.EXPECT().GetVendorSubstring(gomock.Any(), "Flipkart Internet Services").Return(nil, erp.ErrNotFound)
		repo.EXPECT().ListVendors(gomock.Any()).Return([]*erp.Vendor{flipkart}, nil)

		svc := erp.NewService(repo)
		lookup, err := svc.LookupVendor(context.Background(), "Flipkart Internet Services")

		require.NoError(t, err)
		assert.True(t, lookup.Exists)
		assert.Equal(t, "Flipkart India Private Limited", lookup.Name)
	})

	t.Run("NoMatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := erp.NewMockRepository(ctrl)
		repo.EXPECT().GetVendorExact(gomock.Any(), gomock.Any()).Return(nil, erp.ErrNotFound)
		repo.EXPECT().GetVendorFold(gomock.Any(), gomock.Any()).Return(nil, erp.ErrNotFound)
		repo.EXPECT().GetVendorSubstring(gomock.Any(), gomock.Any()).Return(nil, erp.ErrNotFound)
		repo.EXPECT().ListVendors(gomock.Any()).Return([]*erp.Vendor{flipkart}, nil)

		svc := erp.NewService(repo)
		lookup, err := svc.LookupVendor(context.Background(), "Initech LLC")

		require.NoError(t, err)
		assert.False(t, lookup.Exists)
		assert.Contains(t, lookup.Message, "not found in ERP master data")
	})

	t.Run("EmptyName", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := erp.NewService(erp.NewMockRepository(ctrl))
		lookup, err := svc.LookupVendor(context.Background(), "   ")

		require.NoError(t, err)
		assert.False(t, lookup.Exists)
	})
}
