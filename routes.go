package main

import (
	"net/http"

	"minicart/admin"
	"minicart/auth"
	"minicart/cart"
	"minicart/catalog"
	"minicart/gateway"
	"minicart/order"
	"minicart/session"
)

func SetupRoutes(mux *http.ServeMux, gw *gateway.Gateway, sessions session.Store) {
	reconciler := cart.NewReconciler(gw, sessions)
	placer := order.NewPlacer(gw)
	catalogClient := catalog.NewClient(gw)
	authClient := auth.NewClient(gw, sessions)
	adminClient := admin.NewClient(gw)

	mux.HandleFunc("/api/auth/login", auth.LoginHandler(authClient, false))
	mux.HandleFunc("/api/auth/register", auth.RegisterHandler(authClient))
	mux.HandleFunc("/api/auth/logout", auth.LogoutHandler(authClient))
	mux.HandleFunc("/api/auth/status", auth.StatusHandler(authClient))
	mux.HandleFunc("/api/admin/login", auth.LoginHandler(authClient, true))

	mux.HandleFunc("/api/products", catalog.ProductsHandler(catalogClient))
	mux.HandleFunc("/api/products/", catalog.ProductHandler(catalogClient))
	mux.HandleFunc("/api/categories", catalog.CategoriesHandler(catalogClient))
	mux.HandleFunc("/api/categories/", catalog.CategoryHandler(catalogClient))

	mux.HandleFunc("/api/cart", cart.ListHandler(reconciler))
	mux.HandleFunc("/api/cart/add", cart.AddHandler(reconciler))
	mux.HandleFunc("/api/cart/update/", cart.UpdateHandler(reconciler))
	mux.HandleFunc("/api/cart/remove/", cart.RemoveHandler(reconciler))

	mux.HandleFunc("/api/orders/place", order.PlaceHandler(placer))
	mux.HandleFunc("/api/orders", order.HistoryHandler(placer))
	mux.HandleFunc("/api/orders/", order.DetailHandler(placer))

	mux.HandleFunc("/api/admin/dashboard", admin.DashboardHandler(adminClient))
	mux.HandleFunc("/api/admin/users", admin.UsersHandler(adminClient))
	mux.HandleFunc("/api/admin/orders", admin.OrdersHandler(adminClient))
	mux.HandleFunc("/api/admin/orders/", admin.OrderHandler(adminClient))
	mux.HandleFunc("/api/admin/products", admin.ProductsHandler(adminClient))
	mux.HandleFunc("/api/admin/products/", admin.ProductHandler(adminClient))
	mux.HandleFunc("/api/admin/categories", admin.CategoriesHandler(adminClient))
	mux.HandleFunc("/api/admin/categories/", admin.CategoryHandler(adminClient))

	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			GetConfigHandler()(w, r)
		case http.MethodPost:
			SaveConfigHandler()(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})
}
