package id_gen

import (
	"os"
	"strconv"
	"strings"
	"time"

	"prauts/be/biz/util/ip"

	"github.com/bytedance/gopkg/lang/fastrand"
)

// Opaque, roughly sortable identifiers with a type prefix ("acc-..."
// for accounts). A small background pool keeps generation off the
// request path.

const accountPrefix = "acc"

func init() {
	idgen = NewIDGenerator(accountPrefix, 10)
}

// NewID returns a fresh account id.
func NewID() string {
	return idgen.NewID()
}

var idgen *IDGenerator

type IDGenerator struct {
	pool <-chan string
	stop chan any
}

func NewIDGenerator(prefix string, maxSize int) *IDGenerator {
	stop := make(chan any)
	idgen := &IDGenerator{
		pool: newPool(prefix, maxSize, stop),
		stop: stop,
	}

	return idgen
}

func (idgen *IDGenerator) Stop() {
	select {
	case <-idgen.stop:
	default:
		close(idgen.stop)
	}
}

func (idgen *IDGenerator) NewID() string {
	return <-idgen.pool
}

func newPool(prefix string, size int, stop chan any) <-chan string {
	pool := make(chan string, size)

	go func() {
		for {
			select {
			case <-stop:
				return
			default:
				sb := strings.Builder{}
				if prefix != "" {
					sb.WriteString(prefix)
					sb.WriteString("-")
				}
				sb.WriteString(strconv.FormatUint(uint64(time.Now().UnixMilli()), 36))
				sb.WriteString(ip.IPv4Hex())
				sb.WriteString(strconv.FormatUint(uint64(os.Getpid()), 10))
				sb.WriteString(strconv.FormatUint(fastrand.Uint64(), 36))

				pool <- sb.String()
			}
		}
	}()

	return pool
}
