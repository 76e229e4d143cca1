package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/diyahomestylist/poppyandteal/models"
	"github.com/diyahomestylist/poppyandteal/services"
)

type ProductController struct {
	Catalog  *services.CatalogService
	Contacts *services.ContactService
}

// @Summary Get all products
// @Description Get products, optionally filtered by category, featured and stock
// @Tags Products
// @Produce json
// @Param category query string false "Category, All for every category"
// @Param featured query bool false "Featured only"
// @Param in_stock query bool false "In stock only"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Items per page" default(50)
// @Success 200 {object} models.Response{data=[]models.Product}
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	var filter models.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		fail(c, http.StatusBadRequest, "Invalid query", err)
		return
	}
	ok(c, http.StatusOK, "Products retrieved", ctrl.Catalog.List(c.Request.Context(), filter))
}

// @Summary Get featured products
// @Tags Products
// @Produce json
// @Param limit query int false "Max products" default(6)
// @Success 200 {object} models.Response{data=[]models.Product}
// @Router /products/featured [get]
func (ctrl *ProductController) GetFeaturedProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
	ok(c, http.StatusOK, "Featured products retrieved", ctrl.Catalog.Featured(c.Request.Context(), limit))
}

// @Summary Get all categories
// @Description Get list of all categories, "All" first
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response{data=[]string}
// @Router /categories [get]
func (ctrl *ProductController) GetAllCategories(c *gin.Context) {
	ok(c, http.StatusOK, "Categories retrieved", ctrl.Catalog.Categories(c.Request.Context()))
}

// @Summary Search products
// @Tags Products
// @Produce json
// @Param q query string true "Search text"
// @Param limit query int false "Max results" default(20)
// @Success 200 {object} models.Response{data=[]models.Product}
// @Router /products/search [get]
func (ctrl *ProductController) SearchProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	ok(c, http.StatusOK, "Search results", ctrl.Catalog.Search(c.Request.Context(), c.Query("q"), limit))
}

// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response{data=models.Product}
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.Catalog.Get(c.Request.Context(), models.ProductID(c.Param("id")))
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, "Product retrieved", product)
}

// @Summary Product WhatsApp enquiry link
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id}/whatsapp [get]
func (ctrl *ProductController) GetProductWhatsApp(c *gin.Context) {
	link, err := ctrl.Contacts.ProductLink(c.Request.Context(), models.ProductID(c.Param("id")))
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, "WhatsApp link", gin.H{"url": link})
}
