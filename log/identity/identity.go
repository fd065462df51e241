// Package identity names the running process for logs.
package identity

import (
	"sync"

	"github.com/rs/xid"
)

var (
	serviceName = "unknown"
	instanceID  = xid.New().String()
	setOnce     sync.Once
)

// WhoAmI returns the service name and the per-process instance id.
// The instance id is fixed at start up.
func WhoAmI() (string, string) {
	return serviceName, instanceID
}

// SetServiceName sets the service name. Only the first call has any effect.
func SetServiceName(name string) {
	setOnce.Do(func() {
		serviceName = name
	})
}
