package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/studiobridge/studiobridge/internal/core/domain"
)

func (s *Server) registerSaleTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getServices",
		Description: "List pricing options such as class passes and memberships",
	}, s.handleGetServices)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getPackages",
		Description: "List service packages available for sale",
	}, s.handleGetPackages)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getProducts",
		Description: "List retail products",
	}, s.handleGetProducts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getContracts",
		Description: "List contracts and autopay agreements available for sale",
	}, s.handleGetContracts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "checkoutShoppingCart",
		Description: "Check out a shopping cart of services, products or packages for a client",
	}, s.handleCheckoutShoppingCart)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "purchaseContract",
		Description: "Purchase a contract for a client",
	}, s.handlePurchaseContract)
}

func (s *Server) handleGetServices(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.ServiceFilter,
) (*mcp.CallToolResult, domain.ListResult[domain.Service], error) {
	out, err := s.ports.Sale.GetServices(ctx, input)
	return nil, out, err
}

func (s *Server) handleGetPackages(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.PackageFilter,
) (*mcp.CallToolResult, domain.ListResult[domain.Package], error) {
	out, err := s.ports.Sale.GetPackages(ctx, input)
	return nil, out, err
}

func (s *Server) handleGetProducts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.ProductFilter,
) (*mcp.CallToolResult, domain.ListResult[domain.Product], error) {
	out, err := s.ports.Sale.GetProducts(ctx, input)
	return nil, out, err
}

func (s *Server) handleGetContracts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.ContractFilter,
) (*mcp.CallToolResult, domain.ListResult[domain.Contract], error) {
	out, err := s.ports.Sale.GetContracts(ctx, input)
	return nil, out, err
}

func (s *Server) handleCheckoutShoppingCart(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.Checkout,
) (*mcp.CallToolResult, domain.OperationResult[domain.CheckoutResult], error) {
	return nil, s.ports.Sale.CheckoutShoppingCart(ctx, input), nil
}

func (s *Server) handlePurchaseContract(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.ContractPurchase,
) (*mcp.CallToolResult, domain.OperationResult[domain.PurchasedContract], error) {
	return nil, s.ports.Sale.PurchaseContract(ctx, input), nil
}
