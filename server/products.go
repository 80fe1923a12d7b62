package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/example/oiladmin/pkg/models"
	"github.com/example/oiladmin/pkg/repository"
	"github.com/example/oiladmin/pkg/validation"
	"github.com/gin-gonic/gin"
)

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.stores.Products.List(c.Request.Context())
	if err != nil {
		s.storeError(c, err, "Products not found", "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": products, "count": len(products)})
}

func (s *Server) getProduct(c *gin.Context) {
	product, err := s.stores.Products.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		s.storeError(c, err, "Product not found", "Failed to fetch product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// upsertProduct replaces the whole document keyed by the product name, so a
// PUT on an existing name overwrites it.
func (s *Server) upsertProduct(c *gin.Context) {
	var req validation.UpsertProductRequest
	if err := validation.BindAndValidate(c, &req, s.validate, "Invalid product payload"); err != nil {
		return
	}

	types := make([]models.ProductType, 0, len(req.Types))
	for _, t := range req.Types {
		types = append(types, models.ProductType{
			Name:  t.Name,
			Price: t.Price,
			Image: t.Image,
			Offer: t.Offer,
		})
	}
	product := &models.Product{
		Name:      c.Param("name"),
		Brand:     req.Brand,
		Category:  req.Category,
		Types:     types,
		MainImage: req.MainImage,
	}

	if err := s.stores.Products.Upsert(c.Request.Context(), product); err != nil {
		s.storeError(c, err, "Product not found", "Failed to save product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product saved successfully"})
}

func (s *Server) deleteProduct(c *gin.Context) {
	if err := s.stores.Products.Delete(c.Request.Context(), c.Param("name")); err != nil {
		s.storeError(c, err, "Product not found", "Failed to delete product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
}

func (s *Server) getCatalog(c *gin.Context) {
	settings, err := s.stores.Site.Get(c.Request.Context())
	if err != nil {
		s.storeError(c, err, "Settings not found", "Failed to fetch catalog lists")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"brands":   settings.Brands,
		"category": settings.Categories,
	})
}

func (s *Server) addBrand(c *gin.Context) {
	s.mutateList(c, "brand", s.stores.Site.AddBrand)
}

func (s *Server) removeBrand(c *gin.Context) {
	s.mutateList(c, "brand", s.stores.Site.RemoveBrand)
}

func (s *Server) addCategory(c *gin.Context) {
	s.mutateList(c, "category", s.stores.Site.AddCategory)
}

func (s *Server) removeCategory(c *gin.Context) {
	s.mutateList(c, "category", s.stores.Site.RemoveCategory)
}

// mutateList handles the shared shape of the four brand/category endpoints:
// bind a name, apply the store operation, return the updated list.
func (s *Server) mutateList(c *gin.Context, kind string, op func(ctx context.Context, name string) ([]string, error)) {
	var req validation.NameRequest
	if err := validation.BindAndValidate(c, &req, s.validate, "Name is required"); err != nil {
		return
	}

	updated, err := op(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "This " + kind + " already exists"})
			return
		}
		s.storeError(c, err, "The "+kind+" does not exist", "Failed to update "+kind+" list")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "list": updated})
}
