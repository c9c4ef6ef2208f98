package httpadapter

import (
	"strings"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
)

func TestApplyCORSHeaders(t *testing.T) {
	ctx := &app.RequestContext{}
	applyCORSHeaders(ctx)

	if got := string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")); got != "*" {
		t.Fatalf("allow-origin got=%q want=*", got)
	}
	methods := string(ctx.Response.Header.Peek("Access-Control-Allow-Methods"))
	if !strings.Contains(methods, "PUT") {
		t.Fatalf("allow-methods missing PUT: %q", methods)
	}
	headers := string(ctx.Response.Header.Peek("Access-Control-Allow-Headers"))
	for _, want := range []string{ownerIDHeader, adminTokenHeader} {
		if !strings.Contains(headers, want) {
			t.Fatalf("allow-headers missing %s: %q", want, headers)
		}
	}
}
