package controllers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolation(fmt.Errorf("create user: %w", gorm.ErrDuplicatedKey)))
	// Raw postgres message when translation is bypassed.
	assert.True(t, isUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`)))

	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isUniqueViolation(gorm.ErrRecordNotFound))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}

func TestIsRecordNotFound(t *testing.T) {
	assert.True(t, isRecordNotFound(gorm.ErrRecordNotFound))
	assert.True(t, isRecordNotFound(fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound)))
	assert.False(t, isRecordNotFound(errors.New("boom")))
}
