package utils_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/scusemua/chained-hashmap/common/utils"
)

var _ = Describe("LoadStyle", func() {
	It("should pick a style according to the load factor", func() {
		Expect(utils.LoadStyle(0).GetForeground()).To(Equal(utils.GreenStyle.GetForeground()))
		Expect(utils.LoadStyle(0.5).GetForeground()).To(Equal(utils.GreenStyle.GetForeground()))
		Expect(utils.LoadStyle(utils.ModerateLoadThreshold).GetForeground()).To(Equal(utils.YellowStyle.GetForeground()))
		Expect(utils.LoadStyle(1.0).GetForeground()).To(Equal(utils.YellowStyle.GetForeground()))
		Expect(utils.LoadStyle(utils.HighLoadThreshold).GetForeground()).To(Equal(utils.RedStyle.GetForeground()))
		Expect(utils.LoadStyle(10).GetForeground()).To(Equal(utils.RedStyle.GetForeground()))
	})
})
