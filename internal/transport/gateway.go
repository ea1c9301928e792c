package transport

import (
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/protobuf/encoding/protojson"
)

// NewGatewayMux returns the mux serving the REST bindings of NamingService.
// JSON keeps the proto field names and unknown fields fail the request.
func NewGatewayMux(opts ...gwruntime.ServeMuxOption) *gwruntime.ServeMux {
	marshaler := &gwruntime.JSONPb{
		MarshalOptions: protojson.MarshalOptions{
			UseProtoNames:   true,
			EmitUnpopulated: true,
		},
	}
	return gwruntime.NewServeMux(append([]gwruntime.ServeMuxOption{
		gwruntime.WithMarshalerOption(gwruntime.MIMEWildcard, marshaler),
	}, opts...)...)
}
