package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diyahomestylist/poppyandteal/middleware"
	"github.com/diyahomestylist/poppyandteal/models"
	"github.com/diyahomestylist/poppyandteal/services"
)

type AdminController struct {
	Admin *services.AdminService
}

// @Summary Get dashboard
// @Tags Admin
// @Produce json
// @Success 200 {object} models.Response{data=models.DashboardStats}
// @Router /admin/dashboard [get]
func (ctrl *AdminController) GetDashboard(c *gin.Context) {
	stats, err := ctrl.Admin.Dashboard(c.Request.Context(), middleware.ProfileID(c))
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, "Dashboard retrieved", stats)
}

// @Summary Get all users
// @Tags Admin
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Items per page" default(50)
// @Success 200 {object} models.Response{data=[]models.User}
// @Router /admin/users [get]
func (ctrl *AdminController) GetAllUsers(c *gin.Context) {
	users, err := ctrl.Admin.Users(c.Request.Context(), middleware.ProfileID(c), pageParams(c, 50))
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, "Users retrieved", users)
}

// @Summary Update user
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body models.UpdateUserRequest true "User fields"
// @Success 200 {object} models.Response{data=models.User}
// @Router /admin/users/{id} [put]
func (ctrl *AdminController) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	user, err := ctrl.Admin.UpdateUser(c.Request.Context(), middleware.ProfileID(c), c.Param("id"), req)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, "User updated", user)
}

// @Summary Toggle user status
// @Tags Admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.Response
// @Router /admin/users/{id}/toggle-status [patch]
func (ctrl *AdminController) ToggleUserStatus(c *gin.Context) {
	msg, err := ctrl.Admin.ToggleUserStatus(c.Request.Context(), middleware.ProfileID(c), c.Param("id"))
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, msg.Message, nil)
}

// @Summary Get all orders
// @Tags Admin
// @Produce json
// @Param status query string false "Order status"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Items per page" default(50)
// @Success 200 {object} models.Response{data=[]models.Order}
// @Router /admin/orders [get]
func (ctrl *AdminController) GetAllOrders(c *gin.Context) {
	orders, err := ctrl.Admin.Orders(c.Request.Context(), middleware.ProfileID(c), pageParams(c, 50))
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, "Orders retrieved", orders)
}

// @Summary Update order status
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body models.OrderStatusUpdate true "Status"
// @Success 200 {object} models.Response{data=models.Order}
// @Router /admin/orders/{id}/status [put]
func (ctrl *AdminController) UpdateOrderStatus(c *gin.Context) {
	var req models.OrderStatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	order, err := ctrl.Admin.UpdateOrderStatus(c.Request.Context(), middleware.ProfileID(c), c.Param("id"), req.Status)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, "Order status updated", order)
}

// @Summary Get contact messages
// @Tags Admin
// @Produce json
// @Param status query string false "Contact status"
// @Success 200 {object} models.Response{data=[]models.Contact}
// @Router /admin/contacts [get]
func (ctrl *AdminController) GetContacts(c *gin.Context) {
	contacts, err := ctrl.Admin.Contacts(c.Request.Context(), middleware.ProfileID(c), pageParams(c, 50))
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, "Contacts retrieved", contacts)
}

// @Summary Update contact status
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param request body models.ContactStatusUpdate true "Status"
// @Success 200 {object} models.Response{data=models.Contact}
// @Router /admin/contacts/{id}/status [put]
func (ctrl *AdminController) UpdateContactStatus(c *gin.Context) {
	var req models.ContactStatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	contact, err := ctrl.Admin.UpdateContactStatus(c.Request.Context(), middleware.ProfileID(c), c.Param("id"), req.Status)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, "Contact updated", contact)
}

// @Summary Create product
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product"
// @Success 201 {object} models.Response{data=models.Product}
// @Router /admin/products [post]
func (ctrl *AdminController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	product, err := ctrl.Admin.CreateProduct(c.Request.Context(), middleware.ProfileID(c), req)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusCreated, "Product created", product)
}

// @Summary Update product
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.UpdateProductRequest true "Product fields"
// @Success 200 {object} models.Response{data=models.Product}
// @Router /admin/products/{id} [put]
func (ctrl *AdminController) UpdateProduct(c *gin.Context) {
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	product, err := ctrl.Admin.UpdateProduct(c.Request.Context(), middleware.ProfileID(c), models.ProductID(c.Param("id")), req)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, "Product updated", product)
}

// @Summary Delete product
// @Tags Admin
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [delete]
func (ctrl *AdminController) DeleteProduct(c *gin.Context) {
	if err := ctrl.Admin.DeleteProduct(c.Request.Context(), middleware.ProfileID(c), models.ProductID(c.Param("id"))); err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, "Product deleted", nil)
}
