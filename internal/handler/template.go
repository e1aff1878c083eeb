package handler

import (
	"errors"
	"html/template"

	"github.com/BloggingApp/post-manager/internal/model"
)

var errDictArgs = errors.New("dict expects key/value pairs with string keys")

var templateFuncs = template.FuncMap{
	"isError": func(n model.Notification) bool {
		return n.Kind == model.NotificationError
	},
	"dict": func(pairs ...interface{}) (map[string]interface{}, error) {
		if len(pairs)%2 != 0 {
			return nil, errDictArgs
		}
		out := make(map[string]interface{}, len(pairs)/2)
		for i := 0; i < len(pairs); i += 2 {
			key, ok := pairs[i].(string)
			if !ok {
				return nil, errDictArgs
			}
			out[key] = pairs[i+1]
		}
		return out, nil
	},
}
