package controllers

import (
	"github.com/jibrilosman/self-order-kiosk/pkg/resp"
	"github.com/jibrilosman/self-order-kiosk/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{Products: products}
}

// GET /products?category=Burgers
func (pc *ProductController) List(c *gin.Context) {
	products, err := pc.Products.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, products)
}

// POST /products saves whatever fields arrive; only malformed JSON is refused.
func (pc *ProductController) Create(c *gin.Context) {
	var req services.CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := pc.Products.Create(c.Request.Context(), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

// GET /products/seed
func (pc *ProductController) Seed(c *gin.Context) {
	products, err := pc.Products.Seed(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"products": products})
}

// GET /categories
func (pc *ProductController) Categories(c *gin.Context) {
	resp.OK(c, pc.Products.Categories())
}
