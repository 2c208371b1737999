package photos_test

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/healthdesk/registry/photos"
	photosTest "github.com/healthdesk/registry/photos/test"
)

var _ = Describe("S3 Store", func() {
	var ctrl *gomock.Controller
	var client *photosTest.MockObjectClient
	var store photos.Store

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		client = photosTest.NewMockObjectClient(ctrl)
		store = photos.NewStore(client, &photos.Config{
			S3Bucket:      "registry-photos",
			PublicBaseURL: "https://cdn.example.com/storage/",
		}, zap.NewNop().Sugar())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("Put", func() {
		It("uploads the object and returns the public url", func() {
			client.EXPECT().
				PutObject(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
					Expect(*params.Bucket).To(Equal("registry-photos"))
					Expect(*params.Key).To(Equal("document_photos/abc.jpg"))
					Expect(*params.ContentType).To(Equal("image/jpeg"))
					Expect(*params.ContentLength).To(Equal(int64(3)))
					return &s3.PutObjectOutput{}, nil
				})

			url, err := store.Put(context.Background(), "document_photos/abc.jpg", strings.NewReader("jpg"), 3, "image/jpeg")
			Expect(err).ToNot(HaveOccurred())
			Expect(url).To(Equal("https://cdn.example.com/storage/document_photos/abc.jpg"))
		})

		It("returns a storage error when the upload fails", func() {
			client.EXPECT().
				PutObject(gomock.Any(), gomock.Any()).
				Return(nil, fmt.Errorf("connection reset"))

			_, err := store.Put(context.Background(), "document_photos/abc.jpg", strings.NewReader("jpg"), 3, "image/jpeg")

			var storageErr *photos.StorageError
			Expect(err).To(HaveOccurred())
			Expect(errors.As(err, &storageErr)).To(BeTrue())
		})
	})

	Describe("Delete", func() {
		It("deletes the object", func() {
			client.EXPECT().
				DeleteObject(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
					Expect(*params.Key).To(Equal("document_photos/abc.jpg"))
					return &s3.DeleteObjectOutput{}, nil
				})

			store.Delete(context.Background(), "document_photos/abc.jpg")
		})

		It("swallows delete failures", func() {
			client.EXPECT().
				DeleteObject(gomock.Any(), gomock.Any()).
				Return(nil, fmt.Errorf("connection reset"))

			store.Delete(context.Background(), "document_photos/abc.jpg")
		})
	})

	Describe("NewKey", func() {
		It("generates unique jpg keys", func() {
			first := photos.NewKey()
			second := photos.NewKey()

			Expect(first).To(HavePrefix("document_photos/"))
			Expect(first).To(HaveSuffix(".jpg"))
			Expect(first).ToNot(Equal(second))
		})
	})
})
