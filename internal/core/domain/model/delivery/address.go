package delivery

import (
	"errors"

	"fruitmall/internal/pkg/errs"
	"fruitmall/internal/pkg/guard"
)

// Address is the destination of a shipment: who receives it and where. The
// second address line and the courier request are optional.
type Address struct {
	recipient       string
	zipCode         string
	address1        string
	address2        string
	phoneNumber     string
	deliveryRequest string

	guard.ConstructorGuard
}

// NewAddress creates a delivery address. Missing required fields are reported
// together rather than one at a time.
func NewAddress(recipient, zipCode, address1, address2, phoneNumber,
	deliveryRequest string) (Address, error) {
	if err := errors.Join(
		requireAddressField("recipient", recipient),
		requireAddressField("zipCode", zipCode),
		requireAddressField("address1", address1),
		requireAddressField("phoneNumber", phoneNumber),
	); err != nil {
		return Address{}, err
	}

	return Address{
		recipient:        recipient,
		zipCode:          zipCode,
		address1:         address1,
		address2:         address2,
		phoneNumber:      phoneNumber,
		deliveryRequest:  deliveryRequest,
		ConstructorGuard: guard.NewConstructorGuard(),
	}, nil
}

func requireAddressField(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

// Validate ensures the address was created through the constructor.
func (a Address) Validate() error {
	return a.ConstructorGuard.Validate(errors.New(
		"Address must be created via NewAddress constructor"))
}

// Recipient returns the name of the person receiving the shipment.
func (a Address) Recipient() string {
	return a.recipient
}

// ZipCode returns the postal code of the destination.
func (a Address) ZipCode() string {
	return a.zipCode
}

// Address1 returns the primary address line.
func (a Address) Address1() string {
	return a.address1
}

// Address2 returns the secondary address line, empty when unused.
func (a Address) Address2() string {
	return a.address2
}

// PhoneNumber returns the recipient's contact number.
func (a Address) PhoneNumber() string {
	return a.phoneNumber
}

// DeliveryRequest returns the instructions the customer left for the courier.
func (a Address) DeliveryRequest() string {
	return a.deliveryRequest
}
