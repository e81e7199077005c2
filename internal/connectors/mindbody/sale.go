package mindbody

import (
	"context"

	"github.com/studiobridge/studiobridge/internal/core/domain"
	"github.com/studiobridge/studiobridge/internal/core/ports/driven"
)

type rawService struct {
	ID               *string  `json:"Id"`
	Name             *string  `json:"Name"`
	Price            *float64 `json:"Price"`
	OnlinePrice      *float64 `json:"OnlinePrice"`
	TaxIncluded      *float64 `json:"TaxIncluded"`
	TaxRate          *float64 `json:"TaxRate"`
	ProgramID        *int     `json:"ProgramId"`
	SessionTypeID    *int     `json:"SessionTypeId"`
	Count            *int     `json:"Count"`
	ExpirationUnit   *string  `json:"ExpirationUnit"`
	ExpirationLength *int     `json:"ExpirationLength"`
	MembershipID     *int     `json:"MembershipId"`
	Priority         *int     `json:"Priority"`
	Prerequisite     *string  `json:"Prerequisite"`
}

type servicesResponse struct {
	Services           []rawService        `json:"Services"`
	PaginationResponse *paginationResponse `json:"PaginationResponse"`
}

// GetServices returns purchasable pricing options.
func (c *Connector) GetServices(ctx context.Context, filter domain.ServiceFilter) (domain.ListResult[domain.Service], error) {
	limit := filter.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	q := driven.Query{
		"ProgramIds":          filter.ProgramIDs,
		"SessionTypeIds":      filter.SessionTypeIDs,
		"LocationId":          filter.LocationID,
		"ClassId":             filter.ClassID,
		"HideRelatedPrograms": filter.HideRelatedPrograms,
		"Limit":               limit,
	}
	return fetchCached(ctx, c.caches.General, cacheKey("sale.services", q), func(ctx context.Context) (domain.ListResult[domain.Service], error) {
		var resp servicesResponse
		if err := c.gw.Get(ctx, "/sale/services", q, &resp); err != nil {
			return domain.ListResult[domain.Service]{}, err
		}
		items := make([]domain.Service, 0, len(resp.Services))
		for _, s := range resp.Services {
			items = append(items, domain.Service{
				ID:               str(s.ID),
				Name:             str(s.Name),
				Price:            f64(s.Price),
				OnlinePrice:      f64(s.OnlinePrice),
				TaxIncluded:      f64(s.TaxIncluded),
				TaxRate:          f64(s.TaxRate),
				ProgramID:        num(s.ProgramID),
				SessionTypeID:    num(s.SessionTypeID),
				Count:            num(s.Count),
				ExpirationUnit:   str(s.ExpirationUnit),
				ExpirationLength: num(s.ExpirationLength),
				MembershipID:     num(s.MembershipID),
				Priority:         num(s.Priority),
				Prerequisite:     str(s.Prerequisite),
			})
		}
		return domain.ListResult[domain.Service]{Items: items, Total: resp.PaginationResponse.total(len(items))}, nil
	})
}

type rawPackageService struct {
	ID    *string `json:"Id"`
	Name  *string `json:"Name"`
	Count *int    `json:"Count"`
}

type rawPackage struct {
	ID          *int                `json:"Id"`
	Name        *string             `json:"Name"`
	Count       *int                `json:"Count"`
	Price       *float64            `json:"Price"`
	OnlinePrice *float64            `json:"OnlinePrice"`
	TaxIncluded *float64            `json:"TaxIncluded"`
	Active      *bool               `json:"Active"`
	ProductID   *int                `json:"ProductId"`
	SellOnline  *bool               `json:"SellOnline"`
	Services    []rawPackageService `json:"Services"`
}

type packagesResponse struct {
	Packages           []rawPackage        `json:"Packages"`
	PaginationResponse *paginationResponse `json:"PaginationResponse"`
}

// GetPackages returns service bundles offered for sale.
func (c *Connector) GetPackages(ctx context.Context, filter domain.PackageFilter) (domain.ListResult[domain.Package], error) {
	q := driven.Query{
		"LocationId":      filter.LocationID,
		"ClassScheduleId": filter.ClassScheduleID,
		"Limit":           defaultLimit,
	}
	return fetchCached(ctx, c.caches.General, cacheKey("sale.packages", q), func(ctx context.Context) (domain.ListResult[domain.Package], error) {
		var resp packagesResponse
		if err := c.gw.Get(ctx, "/sale/packages", q, &resp); err != nil {
			return domain.ListResult[domain.Package]{}, err
		}
		items := make([]domain.Package, 0, len(resp.Packages))
		for _, p := range resp.Packages {
			pkg := domain.Package{
				ID:          num(p.ID),
				Name:        str(p.Name),
				ClassCount:  num(p.Count),
				Price:       f64(p.Price),
				OnlinePrice: f64(p.OnlinePrice),
				TaxIncluded: f64(p.TaxIncluded),
				Active:      boolOr(p.Active, true),
				ProductID:   num(p.ProductID),
				SellOnline:  flag(p.SellOnline),
			}
			for _, s := range p.Services {
				pkg.Services = append(pkg.Services, domain.PackageService{
					ID:    str(s.ID),
					Name:  str(s.Name),
					Count: num(s.Count),
				})
			}
			items = append(items, pkg)
		}
		return domain.ListResult[domain.Package]{Items: items, Total: resp.PaginationResponse.total(len(items))}, nil
	})
}

type rawProduct struct {
	ID          *string  `json:"Id"`
	Name        *string  `json:"Name"`
	Price       *float64 `json:"Price"`
	OnlinePrice *float64 `json:"OnlinePrice"`
	Description *string  `json:"Description"`
	Category    *string  `json:"Category"`
	Subcategory *string  `json:"Subcategory"`
	Color       *rawRef  `json:"Color"`
	Size        *rawRef  `json:"Size"`
	TaxIncluded *float64 `json:"TaxIncluded"`
	TaxRate     *float64 `json:"TaxRate"`
	SellOnline  *bool    `json:"SellOnline"`
}

type productsResponse struct {
	Products           []rawProduct        `json:"Products"`
	PaginationResponse *paginationResponse `json:"PaginationResponse"`
}

// GetProducts returns retail items.
func (c *Connector) GetProducts(ctx context.Context, filter domain.ProductFilter) (domain.ListResult[domain.Product], error) {
	limit := filter.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	q := driven.Query{
		"ProductIds":     filter.ProductIDs,
		"SearchText":     filter.SearchText,
		"CategoryIds":    filter.CategoryIDs,
		"SubCategoryIds": filter.SubCategoryIDs,
		"SellOnline":     filter.SellOnline,
		"Limit":          limit,
	}
	return fetchCached(ctx, c.caches.General, cacheKey("sale.products", q), func(ctx context.Context) (domain.ListResult[domain.Product], error) {
		var resp productsResponse
		if err := c.gw.Get(ctx, "/sale/products", q, &resp); err != nil {
			return domain.ListResult[domain.Product]{}, err
		}
		items := make([]domain.Product, 0, len(resp.Products))
		for _, p := range resp.Products {
			items = append(items, domain.Product{
				ID:          str(p.ID),
				Name:        str(p.Name),
				Price:       f64(p.Price),
				OnlinePrice: f64(p.OnlinePrice),
				Description: str(p.Description),
				Category:    str(p.Category),
				SubCategory: str(p.Subcategory),
				Color:       p.Color.name(),
				Size:        p.Size.name(),
				TaxIncluded: f64(p.TaxIncluded),
				TaxRate:     f64(p.TaxRate),
				SellOnline:  flag(p.SellOnline),
			})
		}
		return domain.ListResult[domain.Product]{Items: items, Total: resp.PaginationResponse.total(len(items))}, nil
	})
}

type rawAutopaySchedule struct {
	FrequencyType  *string  `json:"FrequencyType"`
	FrequencyValue *int     `json:"FrequencyValue"`
	PaymentAmount  *float64 `json:"PaymentAmount"`
}

type rawIntroOffer struct {
	ID    *string  `json:"Id"`
	Name  *string  `json:"Name"`
	Price *float64 `json:"Price"`
}

type rawContract struct {
	ID                    *int                `json:"Id"`
	Name                  *string             `json:"Name"`
	Description           *string             `json:"Description"`
	AssignsMembershipID   *int                `json:"AssignsMembershipId"`
	AssignsMembershipName *string             `json:"AssignsMembershipName"`
	SoldOnline            *bool               `json:"SoldOnline"`
	ContractType          *string             `json:"ContractType"`
	AgreementTerms        *string             `json:"AgreementTerms"`
	AutopaySchedule       *rawAutopaySchedule `json:"AutopaySchedule"`
	IntroOffer            *rawIntroOffer      `json:"IntroOffer"`
	LocationID            *int                `json:"LocationId"`
}

type contractsResponse struct {
	Contracts          []rawContract       `json:"Contracts"`
	PaginationResponse *paginationResponse `json:"PaginationResponse"`
}

// GetContracts returns purchasable membership contracts.
func (c *Connector) GetContracts(ctx context.Context, filter domain.ContractFilter) (domain.ListResult[domain.Contract], error) {
	q := driven.Query{
		"ContractIds": filter.ContractIDs,
		"SoldOnline":  filter.SoldOnline,
		"LocationId":  filter.LocationID,
		"Limit":       defaultLimit,
	}
	return fetchCached(ctx, c.caches.General, cacheKey("sale.contracts", q), func(ctx context.Context) (domain.ListResult[domain.Contract], error) {
		var resp contractsResponse
		if err := c.gw.Get(ctx, "/sale/contracts", q, &resp); err != nil {
			return domain.ListResult[domain.Contract]{}, err
		}
		items := make([]domain.Contract, 0, len(resp.Contracts))
		for _, ct := range resp.Contracts {
			contract := domain.Contract{
				ID:                    num(ct.ID),
				Name:                  str(ct.Name),
				Description:           str(ct.Description),
				AssignsMembershipID:   num(ct.AssignsMembershipID),
				AssignsMembershipName: str(ct.AssignsMembershipName),
				SoldOnline:            flag(ct.SoldOnline),
				ContractType:          str(ct.ContractType),
				AgreementTerms:        str(ct.AgreementTerms),
				LocationID:            num(ct.LocationID),
			}
			if ct.AutopaySchedule != nil {
				contract.AutopaySchedule = &domain.AutopaySchedule{
					Frequency:     str(ct.AutopaySchedule.FrequencyType),
					Duration:      num(ct.AutopaySchedule.FrequencyValue),
					PaymentAmount: f64(ct.AutopaySchedule.PaymentAmount),
				}
			}
			if ct.IntroOffer != nil {
				contract.IntroOffer = &domain.IntroOffer{
					ID:    str(ct.IntroOffer.ID),
					Name:  str(ct.IntroOffer.Name),
					Price: f64(ct.IntroOffer.Price),
				}
			}
			items = append(items, contract)
		}
		return domain.ListResult[domain.Contract]{Items: items, Total: resp.PaginationResponse.total(len(items))}, nil
	})
}

type cartItemMetadataRequest struct {
	ID     string  `json:"Id,omitempty"`
	Amount float64 `json:"Amount,omitempty"`
}

type cartItemRequest struct {
	Type     string                  `json:"Type"`
	Metadata cartItemMetadataRequest `json:"Metadata"`
}

type cartAppointmentRequest struct {
	StaffID       int    `json:"StaffId"`
	LocationID    int    `json:"LocationId"`
	SessionTypeID int    `json:"SessionTypeId"`
	StartDateTime string `json:"StartDateTime"`
	Notes         string `json:"Notes,omitempty"`
}

type cartLineRequest struct {
	Item                       cartItemRequest          `json:"Item"`
	Quantity                   int                      `json:"Quantity"`
	AppointmentBookingRequests []cartAppointmentRequest `json:"AppointmentBookingRequests,omitempty"`
}

type paymentMetadataRequest struct {
	Amount            float64 `json:"Amount"`
	Notes             string  `json:"Notes,omitempty"`
	LastFour          string  `json:"LastFour,omitempty"`
	CardholderName    string  `json:"CardholderName,omitempty"`
	BillingAddress    string  `json:"BillingAddress,omitempty"`
	BillingCity       string  `json:"BillingCity,omitempty"`
	BillingState      string  `json:"BillingState,omitempty"`
	BillingPostalCode string  `json:"BillingPostalCode,omitempty"`
}

type paymentRequest struct {
	Type     string                 `json:"Type"`
	Metadata paymentMetadataRequest `json:"Metadata"`
}

type checkoutRequest struct {
	ClientID      string           `json:"ClientId"`
	Items         []cartLineRequest `json:"Items"`
	Payments      []paymentRequest `json:"Payments"`
	InStore       bool             `json:"InStore"`
	PromotionCode string           `json:"PromotionCode,omitempty"`
	SendEmail     bool             `json:"SendEmail"`
	LocationID    int              `json:"LocationId,omitempty"`
}

type rawCartItem struct {
	ID             *string  `json:"Id"`
	Name           *string  `json:"Name"`
	UnitPrice      *float64 `json:"UnitPrice"`
	Quantity       *int     `json:"Quantity"`
	DiscountAmount *float64 `json:"DiscountAmount"`
	TaxAmount      *float64 `json:"TaxAmount"`
	Total          *float64 `json:"Total"`
}

type rawShoppingCart struct {
	ID            *string       `json:"Id"`
	SubTotal      *float64      `json:"SubTotal"`
	TaxTotal      *float64      `json:"TaxTotal"`
	DiscountTotal *float64      `json:"DiscountTotal"`
	GrandTotal    *float64      `json:"GrandTotal"`
	CartItems     []rawCartItem `json:"CartItems"`
}

type checkoutResponse struct {
	ShoppingCart *rawShoppingCart `json:"ShoppingCart"`
	Appointments []struct {
		ID            *int    `json:"Id"`
		Status        *string `json:"Status"`
		StartDateTime *string `json:"StartDateTime"`
		EndDateTime   *string `json:"EndDateTime"`
	} `json:"Appointments"`
}

// CheckoutShoppingCart executes a full cart purchase, optionally booking
// appointments attached to cart lines.
func (c *Connector) CheckoutShoppingCart(ctx context.Context, params domain.Checkout) domain.OperationResult[domain.CheckoutResult] {
	body := checkoutRequest{
		ClientID:      params.ClientID,
		InStore:       boolOr(params.InStore, false),
		PromotionCode: params.PromotionCode,
		SendEmail:     boolOr(params.SendEmail, true),
		LocationID:    params.LocationID,
	}
	for _, line := range params.Items {
		req := cartLineRequest{
			Item: cartItemRequest{
				Type: line.Item.Type,
				Metadata: cartItemMetadataRequest{
					ID:     line.Item.Metadata.ID,
					Amount: line.Item.Metadata.Amount,
				},
			},
			Quantity: line.Quantity,
		}
		for _, apt := range line.AppointmentBookingRequests {
			req.AppointmentBookingRequests = append(req.AppointmentBookingRequests, cartAppointmentRequest{
				StaffID:       apt.StaffID,
				LocationID:    apt.LocationID,
				SessionTypeID: apt.SessionTypeID,
				StartDateTime: apt.StartDateTime,
				Notes:         apt.Notes,
			})
		}
		body.Items = append(body.Items, req)
	}
	for _, payment := range params.Payments {
		body.Payments = append(body.Payments, paymentRequest{
			Type: payment.Type,
			Metadata: paymentMetadataRequest{
				Amount:            payment.Metadata.Amount,
				Notes:             payment.Metadata.Notes,
				LastFour:          payment.Metadata.LastFour,
				CardholderName:    payment.Metadata.CardholderName,
				BillingAddress:    payment.Metadata.BillingAddress,
				BillingCity:       payment.Metadata.BillingCity,
				BillingState:      payment.Metadata.BillingState,
				BillingPostalCode: payment.Metadata.BillingPostalCode,
			},
		})
	}

	var resp checkoutResponse
	if err := c.gw.Post(ctx, "/sale/checkoutshoppingcart", body, &resp); err != nil {
		return domain.Failed[domain.CheckoutResult](userMessage(err))
	}
	c.caches.InvalidateGeneral()

	var result domain.CheckoutResult
	if resp.ShoppingCart != nil {
		cart := domain.ShoppingCart{
			ID:            str(resp.ShoppingCart.ID),
			SubTotal:      f64(resp.ShoppingCart.SubTotal),
			TaxTotal:      f64(resp.ShoppingCart.TaxTotal),
			DiscountTotal: f64(resp.ShoppingCart.DiscountTotal),
			GrandTotal:    f64(resp.ShoppingCart.GrandTotal),
			Items:         []domain.PurchasedItem{},
		}
		for _, item := range resp.ShoppingCart.CartItems {
			cart.Items = append(cart.Items, domain.PurchasedItem{
				ID:             str(item.ID),
				Name:           str(item.Name),
				Price:          f64(item.UnitPrice),
				Quantity:       num(item.Quantity),
				DiscountAmount: f64(item.DiscountAmount),
				Tax:            f64(item.TaxAmount),
				Total:          f64(item.Total),
			})
		}
		result.ShoppingCart = &cart
	}
	for _, apt := range resp.Appointments {
		result.Appointments = append(result.Appointments, domain.BookedAppointment{
			ID:            num(apt.ID),
			Status:        str(apt.Status),
			StartDateTime: str(apt.StartDateTime),
			EndDateTime:   str(apt.EndDateTime),
		})
	}
	return domain.Succeeded("Checkout completed successfully", result)
}

type purchaseContractRequest struct {
	ClientID           string `json:"ClientId"`
	ContractID         int    `json:"ContractId"`
	StartDate          string `json:"StartDate,omitempty"`
	FirstPaymentOccurs string `json:"FirstPaymentOccurs"`
	ClientSignature    string `json:"ClientSignature,omitempty"`
	PromotionCode      string `json:"PromotionCode,omitempty"`
	LocationID         int    `json:"LocationId,omitempty"`
}

type purchaseContractResponse struct {
	ClientContract *struct {
		ID            *int     `json:"Id"`
		ClientID      *string  `json:"ClientId"`
		ContractName  *string  `json:"ContractName"`
		StartDate     *string  `json:"StartDate"`
		EndDate       *string  `json:"EndDate"`
		PaymentAmount *float64 `json:"PaymentAmount"`
	} `json:"ClientContract"`
}

// PurchaseContract sells a membership contract to a client.
func (c *Connector) PurchaseContract(ctx context.Context, params domain.ContractPurchase) domain.OperationResult[domain.PurchasedContract] {
	firstPayment := params.FirstPaymentOccurs
	if firstPayment == "" {
		firstPayment = "StartDate"
	}
	body := purchaseContractRequest{
		ClientID:           params.ClientID,
		ContractID:         params.ContractID,
		StartDate:          params.StartDate,
		FirstPaymentOccurs: firstPayment,
		ClientSignature:    params.ClientSignature,
		PromotionCode:      params.PromotionCode,
		LocationID:         params.LocationID,
	}
	var resp purchaseContractResponse
	if err := c.gw.Post(ctx, "/sale/purchasecontract", body, &resp); err != nil {
		return domain.Failed[domain.PurchasedContract](userMessage(err))
	}
	c.caches.InvalidateGeneral()
	var purchased domain.PurchasedContract
	if cc := resp.ClientContract; cc != nil {
		purchased.ClientContract.ID = num(cc.ID)
		purchased.ClientContract.ClientID = str(cc.ClientID)
		purchased.ClientContract.ContractName = str(cc.ContractName)
		purchased.ClientContract.StartDate = str(cc.StartDate)
		purchased.ClientContract.EndDate = str(cc.EndDate)
		purchased.ClientContract.PaymentAmount = f64(cc.PaymentAmount)
	}
	return domain.Succeeded("Contract purchased successfully", purchased)
}
