package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/admitly/lead-capture-api/internal/entity"
)

func TestBuildFilter(t *testing.T) {
	where, args := buildFilter(entity.LeadFilter{})
	assert.Equal(t, " WHERE 1=1", where)
	assert.Empty(t, args)

	where, args = buildFilter(entity.LeadFilter{Status: entity.StatusNew})
	assert.Equal(t, " WHERE 1=1 AND status = $1", where)
	assert.Equal(t, []interface{}{entity.StatusNew}, args)

	where, args = buildFilter(entity.LeadFilter{Course: "tech", Search: "asha"})
	assert.Equal(t, " WHERE 1=1 AND course ILIKE $1 AND (name ILIKE $2 OR email ILIKE $2)", where)
	assert.Equal(t, []interface{}{"%tech%", "%asha%"}, args)

	where, args = buildFilter(entity.LeadFilter{Status: entity.StatusLost, Course: "med", Search: "rao"})
	assert.Equal(t, " WHERE 1=1 AND status = $1 AND course ILIKE $2 AND (name ILIKE $3 OR email ILIKE $3)", where)
	assert.Len(t, args, 3)
}
