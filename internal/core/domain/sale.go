package domain

// Service is a purchasable pricing option (class pack, drop-in, etc).
type Service struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	OnlinePrice      float64 `json:"onlinePrice"`
	TaxIncluded      float64 `json:"taxIncluded,omitempty"`
	TaxRate          float64 `json:"taxRate,omitempty"`
	ProgramID        int     `json:"programId,omitempty"`
	SessionTypeID    int     `json:"sessionTypeId,omitempty"`
	Count            int     `json:"count,omitempty"`
	ExpirationUnit   string  `json:"expirationUnit,omitempty"`
	ExpirationLength int     `json:"expirationLength,omitempty"`
	MembershipID     int     `json:"membershipId,omitempty"`
	Priority         int     `json:"priority,omitempty"`
	Prerequisite     string  `json:"prerequisite,omitempty"`
}

// ServiceFilter narrows GetServices.
type ServiceFilter struct {
	ProgramIDs          []int `json:"programIds,omitempty"`
	SessionTypeIDs      []int `json:"sessionTypeIds,omitempty"`
	LocationID          int   `json:"locationId,omitempty"`
	ClassID             int   `json:"classId,omitempty"`
	HideRelatedPrograms *bool `json:"hideRelatedPrograms,omitempty"`
	Limit               int   `json:"limit,omitempty"`
}

// PackageService is one service bundled inside a package.
type PackageService struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count,omitempty"`
}

// Package bundles services for sale.
type Package struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	ClassCount  int              `json:"classCount,omitempty"`
	Price       float64          `json:"price"`
	OnlinePrice float64          `json:"onlinePrice"`
	TaxIncluded float64          `json:"taxIncluded,omitempty"`
	Active      bool             `json:"active"`
	ProductID   int              `json:"productId,omitempty"`
	SellOnline  bool             `json:"sellOnline"`
	Services    []PackageService `json:"services,omitempty"`
}

// PackageFilter narrows GetPackages.
type PackageFilter struct {
	LocationID      int `json:"locationId,omitempty"`
	ClassScheduleID int `json:"classScheduleId,omitempty"`
}

// Product is a retail item.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	OnlinePrice float64 `json:"onlinePrice"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	SubCategory string  `json:"subCategory,omitempty"`
	Color       string  `json:"color,omitempty"`
	Size        string  `json:"size,omitempty"`
	TaxIncluded float64 `json:"taxIncluded,omitempty"`
	TaxRate     float64 `json:"taxRate,omitempty"`
	SellOnline  bool    `json:"sellOnline"`
}

// ProductFilter narrows GetProducts.
type ProductFilter struct {
	ProductIDs     []string `json:"productIds,omitempty"`
	SearchText     string   `json:"searchText,omitempty"`
	CategoryIDs    []int    `json:"categoryIds,omitempty"`
	SubCategoryIDs []int    `json:"subCategoryIds,omitempty"`
	SellOnline     *bool    `json:"sellOnline,omitempty"`
	Limit          int      `json:"limit,omitempty"`
}

// AutopaySchedule is a contract's recurring payment definition.
type AutopaySchedule struct {
	Frequency     string  `json:"frequency,omitempty"`
	Duration      int     `json:"duration,omitempty"`
	PaymentAmount float64 `json:"paymentAmount,omitempty"`
}

// IntroOffer is an introductory pricing attached to a contract.
type IntroOffer struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Contract is a purchasable membership contract.
type Contract struct {
	ID                    int              `json:"id"`
	Name                  string           `json:"name"`
	Description           string           `json:"description,omitempty"`
	AssignsMembershipID   int              `json:"assignsMembershipId,omitempty"`
	AssignsMembershipName string           `json:"assignsMembershipName,omitempty"`
	SoldOnline            bool             `json:"soldOnline"`
	ContractType          string           `json:"contractType,omitempty"`
	AgreementTerms        string           `json:"agreementTerms,omitempty"`
	AutopaySchedule       *AutopaySchedule `json:"autopaySchedule,omitempty"`
	IntroOffer            *IntroOffer      `json:"introOffer,omitempty"`
	LocationID            int              `json:"locationId,omitempty"`
}

// ContractFilter narrows GetContracts.
type ContractFilter struct {
	ContractIDs []int `json:"contractIds,omitempty"`
	SoldOnline  *bool `json:"soldOnline,omitempty"`
	LocationID  int   `json:"locationId,omitempty"`
}

// CartItemMetadata identifies a cart item: a service/product/package id,
// or a tip amount.
type CartItemMetadata struct {
	ID     string  `json:"id,omitempty"`
	Amount float64 `json:"amount,omitempty"`
}

// CartItemRef is the typed reference inside a cart line.
type CartItemRef struct {
	Type     string           `json:"type" validate:"required,oneof=Service Product Package Tip"`
	Metadata CartItemMetadata `json:"metadata"`
}

// AppointmentBookingRequest books an appointment as part of checkout.
type AppointmentBookingRequest struct {
	StaffID       int    `json:"staffId" validate:"required"`
	LocationID    int    `json:"locationId" validate:"required"`
	SessionTypeID int    `json:"sessionTypeId" validate:"required"`
	StartDateTime string `json:"startDateTime" validate:"required"`
	Notes         string `json:"notes,omitempty"`
}

// CartLine is one line in a checkout.
type CartLine struct {
	Item                       CartItemRef                 `json:"item"`
	Quantity                   int                         `json:"quantity" validate:"required,min=1"`
	AppointmentBookingRequests []AppointmentBookingRequest `json:"appointmentBookingRequests,omitempty"`
}

// PaymentMetadata carries payment details for one payment method.
type PaymentMetadata struct {
	Amount            float64 `json:"amount" validate:"required"`
	Notes             string  `json:"notes,omitempty"`
	LastFour          string  `json:"lastFour,omitempty"`
	CardholderName    string  `json:"cardholderName,omitempty"`
	BillingAddress    string  `json:"billingAddress,omitempty"`
	BillingCity       string  `json:"billingCity,omitempty"`
	BillingState      string  `json:"billingState,omitempty"`
	BillingPostalCode string  `json:"billingPostalCode,omitempty"`
}

// Payment is one payment method applied at checkout.
type Payment struct {
	Type     string          `json:"type" validate:"required"`
	Metadata PaymentMetadata `json:"metadata"`
}

// Checkout is a full shopping-cart purchase.
type Checkout struct {
	ClientID      string     `json:"clientId" validate:"required"`
	Items         []CartLine `json:"items" validate:"required,min=1,dive"`
	Payments      []Payment  `json:"payments" validate:"required,min=1,dive"`
	InStore       *bool      `json:"inStore,omitempty"`
	PromotionCode string     `json:"promotionCode,omitempty"`
	SendEmail     *bool      `json:"sendEmail,omitempty"`
	LocationID    int        `json:"locationId,omitempty"`
}

// PurchasedItem is one priced line on a completed cart.
type PurchasedItem struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Quantity       int     `json:"quantity"`
	DiscountAmount float64 `json:"discountAmount"`
	Tax            float64 `json:"tax"`
	Total          float64 `json:"total"`
}

// ShoppingCart is the priced result of a completed checkout.
type ShoppingCart struct {
	ID            string          `json:"id"`
	SubTotal      float64         `json:"subTotal"`
	TaxTotal      float64         `json:"taxTotal"`
	DiscountTotal float64         `json:"discountTotal"`
	GrandTotal    float64         `json:"grandTotal"`
	Items         []PurchasedItem `json:"items"`
}

// BookedAppointment is an appointment created during checkout.
type BookedAppointment struct {
	ID            int    `json:"id"`
	Status        string `json:"status,omitempty"`
	StartDateTime string `json:"startDateTime,omitempty"`
	EndDateTime   string `json:"endDateTime,omitempty"`
}

// CheckoutResult is the payload of a successful checkout.
type CheckoutResult struct {
	ShoppingCart *ShoppingCart       `json:"shoppingCart,omitempty"`
	Appointments []BookedAppointment `json:"appointments,omitempty"`
}

// ContractPurchase purchases a contract for a client.
type ContractPurchase struct {
	ClientID           string `json:"clientId" validate:"required"`
	ContractID         int    `json:"contractId" validate:"required"`
	StartDate          string `json:"startDate,omitempty"`
	FirstPaymentOccurs string `json:"firstPaymentOccurs,omitempty" validate:"omitempty,oneof=Instant StartDate"`
	ClientSignature    string `json:"clientSignature,omitempty"`
	PromotionCode      string `json:"promotionCode,omitempty"`
	LocationID         int    `json:"locationId,omitempty"`
}

// PurchasedContract is the payload of a successful contract purchase.
type PurchasedContract struct {
	ClientContract struct {
		ID            int     `json:"id"`
		ClientID      string  `json:"clientId"`
		ContractName  string  `json:"contractName"`
		StartDate     string  `json:"startDate,omitempty"`
		EndDate       string  `json:"endDate,omitempty"`
		PaymentAmount float64 `json:"paymentAmount"`
	} `json:"clientContract"`
}
