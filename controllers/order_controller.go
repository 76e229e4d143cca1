package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diyahomestylist/poppyandteal/middleware"
	"github.com/diyahomestylist/poppyandteal/models"
	"github.com/diyahomestylist/poppyandteal/services"
)

type OrderController struct {
	Orders *services.OrderService
}

func pageParams(c *gin.Context, defaultLimit int) models.PageParams {
	var p models.PageParams
	_ = c.ShouldBindQuery(&p)
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	return p
}

// @Summary Get my orders
// @Tags Orders
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.Response{data=[]models.Order}
// @Failure 401 {object} models.ErrorResponse
// @Router /orders [get]
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	orders, err := ctrl.Orders.List(c.Request.Context(), middleware.ProfileID(c), pageParams(c, 20))
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, "Orders retrieved", orders)
}

// @Summary Get order by ID
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response{data=models.Order}
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	order, err := ctrl.Orders.Get(c.Request.Context(), middleware.ProfileID(c), c.Param("id"))
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, "Order retrieved", order)
}
