package infra

import (
	"sync"
)

var (
	mut sync.Mutex
)

func InitDBConnectors() {
	mut.Lock()
	defer mut.Unlock()
	if SQL == nil {
		initSQLConns()
	}
}
