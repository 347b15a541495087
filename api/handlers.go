package api

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/AntonioChieffallo/Student-Grade-Manager/core"
	"github.com/gin-gonic/gin"
)

type addCourseRequest struct {
	Name    string `json:"name"`
	Credits *int   `json:"credits"`
}

type addGradeRequest struct {
	Value *float64 `json:"value"`
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) getGPA(c *gin.Context) {
	var report core.Report
	s.withLedger(func(l *core.Ledger) {
		report = l.Report()
	})

	c.JSON(http.StatusOK, gin.H{
		"gpa":           report.GPA,
		"total_credits": report.TotalCredits,
	})
}

func (s *Server) getReport(c *gin.Context) {
	var report core.Report
	s.withLedger(func(l *core.Ledger) {
		report = l.Report()
	})

	c.JSON(http.StatusOK, report)
}

func (s *Server) addCourse(c *gin.Context) {
	var req addCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "course name is required"})
		return
	}
	// Names are addressed as a single path segment.
	if strings.Contains(name, "/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "course name must not contain '/'"})
		return
	}
	if req.Credits == nil || *req.Credits < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "credits must be a non-negative integer"})
		return
	}

	var course core.CourseReport
	s.withLedger(func(l *core.Ledger) {
		l.AddCourse(name, *req.Credits)
		course, _ = l.CourseReport(name)
	})

	c.JSON(http.StatusCreated, course)
}

func (s *Server) clearAll(c *gin.Context) {
	s.withLedger(func(l *core.Ledger) {
		l.ClearAll()
	})

	c.Status(http.StatusNoContent)
}

func (s *Server) getCourse(c *gin.Context) {
	var (
		course core.CourseReport
		ok     bool
	)
	s.withLedger(func(l *core.Ledger) {
		course, ok = l.CourseReport(c.Param("name"))
	})

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
		return
	}
	c.JSON(http.StatusOK, course)
}

func (s *Server) removeCourse(c *gin.Context) {
	s.withLedger(func(l *core.Ledger) {
		l.RemoveCourse(c.Param("name"))
	})

	c.Status(http.StatusNoContent)
}

func (s *Server) addGrade(c *gin.Context) {
	var req addGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Value == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "grade value is required"})
		return
	}

	name := c.Param("name")
	var (
		course core.CourseReport
		ok     bool
	)
	s.withLedger(func(l *core.Ledger) {
		if !l.HasCourse(name) {
			return
		}
		l.AddGrade(name, *req.Value)
		course, ok = l.CourseReport(name)
	})

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recorded": core.ValidGrade(*req.Value),
		"course":   course,
	})
}

func (s *Server) getProjection(c *gin.Context) {
	value, err := strconv.ParseFloat(c.Query("value"), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "value must be a number"})
		return
	}

	name := c.Param("name")
	var current, projected float64
	s.withLedger(func(l *core.Ledger) {
		current = l.GPA()
		projected = l.ProjectedGPA(name, value)
	})

	c.JSON(http.StatusOK, gin.H{
		"course":        name,
		"value":         value,
		"current_gpa":   current,
		"projected_gpa": projected,
	})
}
