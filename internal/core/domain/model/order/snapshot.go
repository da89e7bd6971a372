package order

import (
	"errors"

	"efood/internal/core/domain/model/kernel"
	"efood/internal/pkg/errs"
)

// PaymentMethod is the closed enumeration of ways an order can be paid.
// The method is fixed at creation; the core never moves money, it only
// records which method was chosen.
type PaymentMethod string

const (
	// PaymentMethodCard is paid online at checkout.
	PaymentMethodCard PaymentMethod = "card"
	// PaymentMethodCash is paid in cash at checkout pickup points.
	PaymentMethodCash PaymentMethod = "cash"
	// PaymentMethodDelivery is the deferred "pay on delivery" (COD) method.
	// It is the one method that requires administrator approval.
	PaymentMethodDelivery PaymentMethod = "delivery"
)

// Validate checks the method against the closed enumeration.
func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentMethodCard, PaymentMethodCash, PaymentMethodDelivery:
		return nil
	default:
		return errs.NewValueIsInvalidError("payment method: " + string(m))
	}
}

// RequiresApproval reports whether orders paid with this method must pass
// the admin approval gate before a restaurant sees them. This is decided
// once, at order creation, and never recomputed.
func (m PaymentMethod) RequiresApproval() bool {
	return m == PaymentMethodDelivery
}

// PaymentInfo is the immutable payment snapshot captured at order creation.
type PaymentInfo struct {
	method     PaymentMethod
	cardBrand  string
	cardNumber string
}

// NewPaymentInfo creates a validated payment snapshot.
// Card details are optional and kept only as masked display data.
func NewPaymentInfo(method PaymentMethod, cardBrand, cardNumber string) (PaymentInfo, error) {
	if err := method.Validate(); err != nil {
		return PaymentInfo{}, err
	}
	return PaymentInfo{method: method, cardBrand: cardBrand, cardNumber: cardNumber}, nil
}

// Method returns the payment method.
func (p PaymentInfo) Method() PaymentMethod { return p.method }

// CardBrand returns the masked card brand, if any.
func (p PaymentInfo) CardBrand() string { return p.cardBrand }

// CardNumber returns the masked card number, if any.
func (p PaymentInfo) CardNumber() string { return p.cardNumber }

// Validate checks the snapshot's method.
func (p PaymentInfo) Validate() error { return p.method.Validate() }

// Address is the immutable delivery address snapshot captured at order
// creation. Later edits to the customer's address book must never
// retroactively change a placed order, so the order keeps its own copy.
type Address struct {
	street       string
	number       string
	complement   string
	neighborhood string
	municipality string
	province     string
	reference    string
}

// ErrStreetIsRequired is returned when an address snapshot has no street.
var ErrStreetIsRequired = errs.NewValueIsRequiredError("street")

// NewAddress creates a validated address snapshot. Street is the only
// mandatory component; the rest mirror the customer profile fields.
func NewAddress(street, number, complement, neighborhood, municipality, province, reference string) (Address, error) {
	if street == "" {
		return Address{}, ErrStreetIsRequired
	}
	return Address{
		street:       street,
		number:       number,
		complement:   complement,
		neighborhood: neighborhood,
		municipality: municipality,
		province:     province,
		reference:    reference,
	}, nil
}

// Street returns the street component.
func (a Address) Street() string { return a.street }

// Number returns the street number component.
func (a Address) Number() string { return a.number }

// Complement returns the complement component.
func (a Address) Complement() string { return a.complement }

// Neighborhood returns the neighborhood component.
func (a Address) Neighborhood() string { return a.neighborhood }

// Municipality returns the municipality component.
func (a Address) Municipality() string { return a.municipality }

// Province returns the province component.
func (a Address) Province() string { return a.province }

// Reference returns the free-text landmark reference.
func (a Address) Reference() string { return a.reference }

// Validate checks the snapshot invariants.
func (a Address) Validate() error {
	if a.street == "" {
		return ErrStreetIsRequired
	}
	return nil
}

// Item is one line of the immutable items snapshot taken at order creation.
type Item struct {
	name      string
	unitPrice kernel.Money
	quantity  int
}

var (
	// ErrItemNameIsRequired is returned for an item without a name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item name")
	// ErrItemQuantityIsInvalid is returned for a non-positive quantity.
	ErrItemQuantityIsInvalid = errs.NewValueIsInvalidError("item quantity must be greater than 0")
)

// NewItem creates a validated order line.
func NewItem(name string, unitPrice kernel.Money, quantity int) (Item, error) {
	item := Item{}
	if err := errors.Join(
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}
	return item, nil
}

// Name returns the menu item name as captured at creation.
func (i Item) Name() string { return i.name }

// UnitPrice returns the price per unit as captured at creation.
func (i Item) UnitPrice() kernel.Money { return i.unitPrice }

// Quantity returns the ordered quantity.
func (i Item) Quantity() int { return i.quantity }

// LineTotal returns unitPrice * quantity.
func (i Item) LineTotal() kernel.Money {
	return i.unitPrice.MulInt(i.quantity)
}

// Validate checks the line invariants.
func (i Item) Validate() error {
	if i.name == "" {
		return ErrItemNameIsRequired
	}
	if i.quantity <= 0 {
		return ErrItemQuantityIsInvalid
	}
	return i.unitPrice.Validate()
}

func (i *Item) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.unitPrice = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrItemQuantityIsInvalid
	}
	i.quantity = quantity
	return nil
}
