package auth

import (
	"testing"
	"time"

	"github.com/innovcell/ic_events/config/role"
	"github.com/innovcell/ic_events/entities"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var testSecret = []byte("supersecret")

func testTokenUser() entities.User {
	return entities.User{
		ID:   primitive.NewObjectID(),
		Name: "Bob the Tester",
		Role: role.Student,
	}
}

func Test_NewJWT__should_fail_with_empty_secret(t *testing.T) {
	_, err := NewJWT(testTokenUser(), time.Now().Unix(), 100, nil)

	assert.Error(t, err)
}

func Test_GetJWTClaims__should_return_claims_for_valid_token(t *testing.T) {
	user := testTokenUser()
	token, err := NewJWT(user, time.Now().Unix(), 100, testSecret)
	assert.NoError(t, err)

	claims := GetJWTClaims(token, testSecret)

	assert.NotNil(t, claims)
	assert.Equal(t, user.ID.Hex(), claims.Id)
	assert.Equal(t, role.Student, claims.Role)
}

func Test_GetJWTClaims__should_return_nil_for_token_with_wrong_secret(t *testing.T) {
	token, err := NewJWT(testTokenUser(), time.Now().Unix(), 100, testSecret)
	assert.NoError(t, err)

	assert.Nil(t, GetJWTClaims(token, []byte("othersecret")))
}

func Test_GetJWTClaims__should_return_nil_for_expired_token(t *testing.T) {
	token, err := NewJWT(testTokenUser(), time.Now().Add(-time.Hour).Unix(), 100, testSecret)
	assert.NoError(t, err)

	assert.Nil(t, GetJWTClaims(token, testSecret))
}

func Test_GetJWTClaims__should_return_nil_for_garbage_token(t *testing.T) {
	assert.Nil(t, GetJWTClaims("not a token", testSecret))
}
