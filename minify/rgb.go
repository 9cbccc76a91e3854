package minify

import (
	"math"
	"strconv"
	"strings"

	"github.com/andrewstuart/csstok/context"
	"github.com/andrewstuart/csstok/token"
	"github.com/andrewstuart/csstok/tokenizer"
)

// tryCollapseRGB implements the rgb()/rgba() to #hash conversion (scenarios
// S1/S6, property P6), ported from the channel-accumulation loop in
// original_source/extcss3/minifier/types/function.c
// (extcss3_minify_function_rgb_a) to the token-list model: instead of
// walking a raw linked list of C tokens, it walks the already-built
// doubly-linked token.List between the FUNCTION token and the BR_RC that is
// current when this runs.
//
// It is invoked on BR_RC because that is the only point at which every
// argument has been emitted; the FUNCTION token's own context frame
// (FunctionArgs, not yet popped, since the modifier runs ahead of context
// advancement) identifies the matching opener.
//
// One deliberate deviation from the C original: there, every channel
// (including alpha) feeds a single numbers/percentages counter, so an
// rgba() that mixes percentage color channels with a numeric alpha would
// trip its "no mixed types" guard. Scenario S6 requires exactly that
// combination to collapse, so here the alpha channel's type is checked
// independently of the three color channels.
func tryCollapseRGB(h *tokenizer.Handle) {
	t := h.Current()
	if h.Context().Top() != context.FunctionArgs {
		return
	}
	opener := h.Context().Opener()
	if opener == nil || opener.Kind != token.Function || len(opener.Data) == 0 {
		return
	}
	name := strings.ToLower(string(opener.Data[:len(opener.Data)-1]))
	withAlpha := name == "rgba"
	if name != "rgb" && !withAlpha {
		return
	}

	type channel struct {
		v   float64
		pct bool
	}
	var chans []channel
	for cur := opener.Next; cur != nil && cur != t; cur = cur.Next {
		switch cur.Kind {
		case token.WS, token.Comment, token.Comma:
			continue
		case token.Number:
			f, err := strconv.ParseFloat(string(cur.Data), 64)
			if err != nil {
				return
			}
			chans = append(chans, channel{f, false})
		case token.Percentage:
			f, err := strconv.ParseFloat(string(cur.Data[:len(cur.Data)-len(cur.Info)]), 64)
			if err != nil {
				return
			}
			chans = append(chans, channel{f, true})
		default:
			return
		}
	}

	want := 3
	if withAlpha {
		want = 4
	}
	if len(chans) != want {
		return
	}

	rgbPct := chans[0].pct
	for i := 0; i < 3; i++ {
		if chans[i].pct != rgbPct {
			return
		}
	}

	channelBytes := make([]byte, 3)
	for i := 0; i < 3; i++ {
		v := chans[i].v
		if rgbPct {
			if v < 0 || v > 100 {
				return
			}
			v = math.Round(v * 2.55)
		} else {
			if v < 0 || v > 255 || v != math.Trunc(v) {
				return
			}
		}
		channelBytes[i] = clampByte(v)
	}

	opaque := true
	var alphaByte byte
	if withAlpha {
		av := chans[3].v
		if chans[3].pct {
			if av < 0 || av > 100 {
				return
			}
			av = math.Round(av * 2.55)
		} else {
			if av < 0 || av > 1 {
				return
			}
			av = math.Round(av * 255)
		}
		alphaByte = clampByte(av)
		opaque = alphaByte == 255
	}

	hex := make([]byte, 0, 8)
	hex = appendHex(hex, channelBytes[0])
	hex = appendHex(hex, channelBytes[1])
	hex = appendHex(hex, channelBytes[2])
	if withAlpha && !opaque {
		hex = appendHex(hex, alphaByte)
	}

	final := hex
	if short, ok := shortenHex(hex); ok {
		final = short
	}

	h.DeleteRange(opener, t.Prev)
	h.Retype(token.Hash)
	t.Data = append([]byte{'#'}, final...)
	t.Flag = token.FlagID
	t.User = nil
}

func clampByte(v float64) byte {
	iv := int(v)
	if iv < 0 {
		iv = 0
	}
	if iv > 255 {
		iv = 255
	}
	return byte(iv)
}

const hexDigits = "0123456789abcdef"

func appendHex(dst []byte, b byte) []byte {
	return append(dst, hexDigits[b>>4], hexDigits[b&0xF])
}
