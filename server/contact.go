package server

import (
	"net/http"

	"github.com/example/oiladmin/pkg/repository"
	"github.com/example/oiladmin/pkg/validation"
	"github.com/gin-gonic/gin"
)

func (s *Server) listContactForms(c *gin.Context) {
	forms, err := s.stores.Contacts.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		s.storeError(c, err, "Contact forms not found", "Failed to fetch contact forms")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "forms": forms, "count": len(forms)})
}

func (s *Server) getContactForm(c *gin.Context) {
	form, err := s.stores.Contacts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.storeError(c, err, "Contact form not found", "Failed to fetch contact form")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "form": form})
}

func (s *Server) updateContactForm(c *gin.Context) {
	var req validation.UpdateContactFormRequest
	if err := validation.BindAndValidate(c, &req, s.validate, "Invalid status value"); err != nil {
		return
	}

	upd := repository.ContactUpdate{
		Status:       req.Status,
		ContactedVia: req.ContactedVia,
		AdminNotes:   req.AdminNotes,
		AssignedTo:   req.AssignedTo,
	}
	if err := s.stores.Contacts.Update(c.Request.Context(), c.Param("id"), upd); err != nil {
		s.storeError(c, err, "Contact form not found", "Failed to update contact form")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Contact form updated successfully"})
}

func (s *Server) archiveContactForm(c *gin.Context) {
	if err := s.stores.Contacts.Archive(c.Request.Context(), c.Param("id")); err != nil {
		s.storeError(c, err, "Contact form not found", "Failed to archive contact form")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Contact form archived successfully"})
}

func (s *Server) deleteContactForm(c *gin.Context) {
	if err := s.stores.Contacts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.storeError(c, err, "Contact form not found", "Failed to delete contact form")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Contact form deleted successfully"})
}

func (s *Server) contactFormStatistics(c *gin.Context) {
	stats, err := s.stores.Contacts.Statistics(c.Request.Context())
	if err != nil {
		s.storeError(c, err, "Contact forms not found", "Failed to fetch contact form statistics")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "statistics": stats})
}
