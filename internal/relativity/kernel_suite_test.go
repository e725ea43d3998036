package relativity_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRelativitySuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Relativity Kernel Suite")
}
