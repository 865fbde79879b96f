package service

import (
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
)

// PaymentChecker confirms a gateway payment reference actually settled before
// an admin may flip payment_verified.
type PaymentChecker interface {
	IsSettled(reference string) (bool, error)
}

type MidtransPaymentChecker struct {
	client coreapi.Client
}

func NewMidtransPaymentChecker(serverKey string) *MidtransPaymentChecker {
	c := coreapi.Client{}
	c.New(serverKey, midtrans.Production)
	return &MidtransPaymentChecker{client: c}
}

func (m *MidtransPaymentChecker) IsSettled(reference string) (bool, error) {
	resp, err := m.client.CheckTransaction(reference)
	if err != nil {
		return false, fmt.Errorf("midtrans check failed: %s", err.Message)
	}
	switch resp.TransactionStatus {
	case "settlement", "capture":
		return true, nil
	default:
		return false, nil
	}
}
