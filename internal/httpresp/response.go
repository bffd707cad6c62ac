package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK responde 200 com {message, <key>: entity}.
func OK(c *gin.Context, message, key string, entity any) {
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		key:       entity,
	})
}

// Created responde 201 com {message, <key>: entity}.
func Created(c *gin.Context, message, key string, entity any) {
	c.JSON(http.StatusCreated, gin.H{
		"message": message,
		key:       entity,
	})
}

// Collection responde 200 com {<key>: entities}.
func Collection(c *gin.Context, key string, entities any) {
	c.JSON(http.StatusOK, gin.H{key: entities})
}

// Message responde 200 com {message}.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}
