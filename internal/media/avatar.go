package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const maxAvatarSide = 512

type AvatarStorage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewAvatarStorage(region, accessKey, secretKey, bucket, baseURL string) *AvatarStorage {
	cfg := aws.Config{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
	}

	return &AvatarStorage{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		baseURL: baseURL,
	}
}

// Upload decodifica a imagem enviada, reduz para no máximo 512px,
// converte para webp e grava no bucket. Retorna a URL pública.
func (s *AvatarStorage) Upload(
	ctx context.Context,
	professionalID uint,
	r io.Reader,
) (string, error) {

	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode avatar: %w", err)
	}

	dst := scaleDown(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("avatars/%d.webp", professionalID)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("put avatar: %w", err)
	}

	return s.baseURL + "/" + key, nil
}

func scaleDown(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if w <= maxAvatarSide && h <= maxAvatarSide {
		return src
	}

	if w > h {
		h = h * maxAvatarSide / w
		w = maxAvatarSide
	} else {
		w = w * maxAvatarSide / h
		h = maxAvatarSide
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
