package tagscan

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/tagscan/tagscan/internal/id3v2"
	"github.com/tagscan/tagscan/internal/mp3header"
)

// DurationEstimate is the result of EstimateDuration: how long an MP3
// stream plays for, plus the audio frame header and leading tag (if any)
// the estimate was derived from.
type DurationEstimate struct {
	Duration time.Duration
	Audio    mp3header.MP3Header
	Tag      *Container // nil if the stream had no leading ID3v2 tag
	TagSize  int        // bytes occupied by Tag, header included
}

func (d *DurationEstimate) String() string {
	return d.Duration.String()
}

// EstimateDuration reads a leading ID3v2 tag (if any) off r, then reads
// the first MPEG audio frame header and estimates total playing time
// from totalSize and that frame's bit rate, the constant-bit-rate
// approximation described at
// https://www.factorialcomplexity.com/blog/how-to-get-a-duration-of-a-remote-mp3-file.
//
// totalSize is int64 to match os.FileInfo.Size and http.Response.ContentLength.
func EstimateDuration(r io.Reader, totalSize int64) (*DurationEstimate, error) {
	var est DurationEstimate

	var probed bytes.Buffer
	header, ok, err := id3v2.ProbeHeader(io.TeeReader(r, &probed))
	if err != nil {
		return nil, fmt.Errorf("tagscan: reading leading tag: %w", err)
	}
	if ok {
		c := id3v2.NewContainer(header.Version, header, id3v2.BuildFieldDecoders())
		c.SetFallbacks(nil, nil)
		if err := c.Parse(io.LimitReader(r, int64(header.Size))); err != nil {
			return nil, fmt.Errorf("tagscan: parsing leading tag: %w", err)
		}
		result := c.Result()
		est.Tag = result
		est.TagSize = id3v2.HeaderLen + header.Size
	} else {
		// No tag: the probed bytes are the start of the audio stream.
		r = io.MultiReader(&probed, r)
	}

	var frameBits uint32
	if err := binary.Read(r, binary.BigEndian, &frameBits); err != nil {
		return nil, fmt.Errorf("tagscan: reading audio frame header: %w", err)
	}
	est.Audio, err = mp3header.ParseMP3Header(frameBits)
	if err != nil {
		return nil, fmt.Errorf("tagscan: %w", err)
	}

	playingBytes := totalSize - int64(est.TagSize)
	est.Duration = time.Duration(playingBytes / (int64(est.Audio.BitRate) / 8) * 1000000)
	if est.Audio.ChannelMode == mp3header.ChannelModeMono {
		est.Duration *= 2
	}

	return &est, nil
}
