package server

import (
	"net/http"
	"strconv"

	"github.com/example/oiladmin/pkg/repository"
	"github.com/example/oiladmin/pkg/validation"
	"github.com/gin-gonic/gin"
)

func (s *Server) listOrders(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid limit value"})
		return
	}

	orders, err := s.stores.Orders.List(c.Request.Context(), repository.ListOrdersOptions{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Limit:  limit,
	})
	if err != nil {
		s.storeError(c, err, "Order not found", "Failed to fetch orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"orders":  orders,
		"count":   len(orders),
	})
}

func (s *Server) getOrder(c *gin.Context) {
	order, err := s.stores.Orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.storeError(c, err, "Order not found", "Failed to fetch order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (s *Server) deleteOrder(c *gin.Context) {
	if err := s.stores.Orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.storeError(c, err, "Order not found", "Failed to delete order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order deleted successfully"})
}

func (s *Server) updateOrderStatus(c *gin.Context) {
	var req validation.UpdateOrderStatusRequest
	if err := validation.BindAndValidate(c, &req, s.validate, "Invalid status value"); err != nil {
		return
	}

	if err := s.stores.Orders.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		s.storeError(c, err, "Order not found", "Failed to update order status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated successfully"})
}

func (s *Server) updatePaymentStatus(c *gin.Context) {
	var req validation.UpdatePaymentStatusRequest
	if err := validation.BindAndValidate(c, &req, s.validate, "Invalid payment status value"); err != nil {
		return
	}

	if err := s.stores.Orders.SetPaymentStatus(c.Request.Context(), c.Param("id"), req.PaymentStatus); err != nil {
		s.storeError(c, err, "Order not found", "Failed to update payment status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment status updated successfully"})
}

func (s *Server) orderStatistics(c *gin.Context) {
	stats, err := s.stores.Orders.Statistics(c.Request.Context())
	if err != nil {
		s.storeError(c, err, "Orders not found", "Failed to fetch order statistics")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "statistics": stats})
}
