package test

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"
)

var Faker = faker.NewWithSeed(rand.NewSource(ginkgo.GinkgoRandomSeed()))
