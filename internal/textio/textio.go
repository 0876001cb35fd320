// Package textio reads position lists that may have been saved by Windows
// tools in Shift-JIS.
package textio

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

var ErrUndecodable = errors.New("textio: input is neither UTF-8 nor Shift-JIS")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode 返回 UTF-8 文本：去掉 BOM，非 UTF-8 时按 Shift-JIS 解码。
func Decode(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}
	reader := transform.NewReader(bytes.NewReader(data), japanese.ShiftJIS.NewDecoder())
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(decoded) {
		return "", ErrUndecodable
	}
	return string(decoded), nil
}

// ReadLines 读取全部内容并按行拆分，跳过空行和 # 注释行。
func ReadLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text, err := Decode(data)
	if err != nil {
		return nil, err
	}
	var out []string
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}
