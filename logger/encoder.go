package logger

import (
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logconf/formatter"
)

var bufferPool = buffer.NewPool()

// rootName is the %(name)s of records logged without a named logger
const rootName = "root"

// templateEncoder renders entries with a compiled formatter template.
// Context fields added through With are kept in the embedded map
// encoder and printed after the message together with call-site fields.
type templateEncoder struct {
	*zapcore.MapObjectEncoder
	tmpl *formatter.Template
}

func newTemplateEncoder(tmpl *formatter.Template) *templateEncoder {
	return &templateEncoder{
		MapObjectEncoder: zapcore.NewMapObjectEncoder(),
		tmpl:             tmpl,
	}
}

func (e *templateEncoder) Clone() zapcore.Encoder {
	return e.clone()
}

func (e *templateEncoder) clone() *templateEncoder {
	c := newTemplateEncoder(e.tmpl)
	for k, v := range e.Fields {
		c.Fields[k] = v
	}
	return c
}

func (e *templateEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	fieldMap := e.Fields
	if len(fields) > 0 {
		c := e.clone()
		for _, f := range fields {
			f.AddTo(c.MapObjectEncoder)
		}
		fieldMap = c.Fields
	}

	name := ent.LoggerName
	if name == "" {
		name = rootName
	}

	rec := formatter.Record{
		Time:    ent.Time,
		Name:    name,
		Level:   fromZap(ent.Level),
		Message: ent.Message,
		Fields:  fieldMap,
	}
	if ent.Caller.Defined {
		rec.File = ent.Caller.File
		rec.Line = ent.Caller.Line
		rec.Function = ent.Caller.Function
	}

	buf := bufferPool.Get()
	_, _ = buf.Write(e.tmpl.AppendRecord(nil, rec))
	buf.AppendByte('\n')
	if ent.Stack != "" {
		buf.AppendString(ent.Stack)
		buf.AppendByte('\n')
	}
	return buf, nil
}
