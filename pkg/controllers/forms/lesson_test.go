package forms

import (
	"testing"

	"github.com/codelieche/lessons/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestActionForm_Validate(t *testing.T) {
	form := &ActionForm{}
	assert.NoError(t, form.Validate("batch", "batch", "one"))
	assert.Equal(t, "batch", form.Action)

	form = &ActionForm{Action: "one"}
	assert.NoError(t, form.Validate("batch", "batch", "one"))
	assert.Equal(t, "one", form.Action)

	form = &ActionForm{Action: "drop"}
	assert.ErrorIs(t, form.Validate("batch", "batch", "one"), core.ErrBadRequest)
}

func TestUserActionForm_SetDefault(t *testing.T) {
	form := &UserActionForm{}
	form.SetDefault(1, "王五")
	assert.Equal(t, uint(1), form.ID)
	assert.Equal(t, "王五", form.Username)

	form = &UserActionForm{ID: 3, Username: "赵六"}
	form.SetDefault(1, "王五")
	assert.Equal(t, uint(3), form.ID)
	assert.Equal(t, "赵六", form.Username)
}
