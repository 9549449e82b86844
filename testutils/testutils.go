package testutils

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"os"

	"github.com/gin-gonic/gin"
)

// UnmarshallResponse unmarshalls the response in res and stores it in out
func UnmarshallResponse(res *bytes.Buffer, out interface{}) error {
	actualResStr, err := res.ReadString('\x00')
	if err.Error() != "EOF" {
		return err
	}

	return json.Unmarshal([]byte(actualResStr), out)
}

// AddRequestWithFormParamsToCtx attaches a request with given method and form params to the context
func AddRequestWithFormParamsToCtx(ctx *gin.Context, method string, params map[string][]string) {
	data := url.Values{}
	for key, vals := range params {
		for _, val := range vals {
			data.Add(key, val)
		}
	}

	req := httptest.NewRequest(method, "/test", bytes.NewBufferString(data.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; param=value")
	ctx.Request = req
}

// AddRequestWithJSONBodyToCtx attaches a request with given method and a JSON body to the context
func AddRequestWithJSONBodyToCtx(ctx *gin.Context, method string, body interface{}) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req := httptest.NewRequest(method, "/test", bytes.NewBuffer(encoded))
	req.Header.Set("Content-Type", "application/json")
	ctx.Request = req
	return nil
}

// AddUrlParamsToCtx attaches url params to the context
func AddUrlParamsToCtx(ctx *gin.Context, params map[string]string) {
	p := gin.Params{}
	for key, val := range params {
		p = append(p, gin.Param{
			Key:   key,
			Value: val,
		})
	}

	ctx.Params = p
}

// SetEnvVars sets given environment variables and provides a callback function to restore the variables to their initial values
func SetEnvVars(vars map[string]string) (restoreVars func()) {
	initialValues := map[string]string{}
	unsetVars := map[string]bool{}

	for name, value := range vars {
		initialValue, exists := os.LookupEnv(name)
		if exists {
			initialValues[name] = initialValue
		} else {
			unsetVars[name] = true
		}

		err := os.Setenv(name, value)
		if err != nil {
			panic(err)
		}
	}

	return func() {
		for name, value := range initialValues {
			err := os.Setenv(name, value)
			if err != nil {
				panic(err)
			}
		}

		for name := range unsetVars {
			err := os.Unsetenv(name)
			if err != nil {
				panic(err)
			}
		}
	}
}

// UnsetVars unsets given environment variables and provides a callback function to restore the variables to their initial values
func UnsetVars(vars ...string) (restoreVars func()) {
	initialValues := map[string]string{}
	for _, name := range vars {
		initialValue, exists := os.LookupEnv(name)
		if exists {
			initialValues[name] = initialValue
		}

		err := os.Unsetenv(name)
		if err != nil {
			panic(err)
		}
	}

	return func() {
		for name, value := range initialValues {
			err := os.Setenv(name, value)
			if err != nil {
				panic(err)
			}
		}
	}
}
