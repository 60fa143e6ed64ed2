package schema

import (
	"encoding/json"
	"encoding/xml"
	"reflect"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsIsZeroCoversEveryField(t *testing.T) {
	require.True(t, (*Settings)(nil).IsZero())
	require.True(t, new(Settings).IsZero())

	typ := reflect.TypeOf(Settings{})
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		t.Run(field.Name, func(t *testing.T) {
			var s Settings
			v := reflect.ValueOf(&s).Elem().Field(i)
			switch field.Type.Kind() {
			case reflect.Ptr:
				v.Set(reflect.New(field.Type.Elem()))
			case reflect.Slice:
				v.Set(reflect.MakeSlice(field.Type, 1, 1))
			default:
				t.Fatalf("unexpected kind %s", field.Type.Kind())
			}
			assert.False(t, s.IsZero(), "IsZero ignores %s", field.Name)
		})
	}
}

func TestMessageWithoutSettingsXML(t *testing.T) {
	price := 0
	req := Request{
		ServiceID: 100,
		Username:  "u",
		Password:  "p",
		Message: []Message{
			{Recipient: "+4741000000", Content: "first", Price: &price},
			{Recipient: "+4741000001", Content: "second"},
		},
	}
	data, err := xml.Marshal(req)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))
	root := doc.SelectElement("request")
	require.NotNil(t, root)
	assert.Equal(t, "100", root.SelectElement("serviceId").Text())
	assert.Nil(t, root.SelectElement("batchReference"))

	messages := root.SelectElements("message")
	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].SelectElement("content").Text())
	assert.Equal(t, "second", messages[1].SelectElement("content").Text())
	assert.Equal(t, "0", messages[0].SelectElement("price").Text())
	assert.Nil(t, messages[1].SelectElement("price"))
	for _, m := range messages {
		assert.Nil(t, m.SelectElement("settings"))
		assert.Nil(t, m.SelectElement("clientReference"))
	}
}

func TestSettingsXML(t *testing.T) {
	priority, session := 2, true
	start := time.Date(2015, 8, 6, 12, 0, 0, 0, time.FixedZone("", 2*3600))
	startTime := TimeOfDay(start)
	msg := Message{
		Recipient: "+4741000000",
		Content:   "test",
		Settings: &Settings{
			Priority:   &priority,
			NewSession: &session,
			OriginatorSettings: &OriginatorSettings{
				OriginatorType: OriginatorAlphanumeric,
				Originator:     "Intelecom",
			},
			SendWindow: &SendWindow{StartDate: Date(start), StartTime: &startTime},
			Parameter:  []Parameter{{"a", "1"}, {"b", "2"}},
		},
	}
	data, err := xml.Marshal(Request{Message: []Message{msg}})
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))
	settings := doc.FindElement("/request/message/settings")
	require.NotNil(t, settings)
	assert.Equal(t, "2", settings.SelectElement("priority").Text())
	assert.Equal(t, "true", settings.SelectElement("newSession").Text())
	assert.Nil(t, settings.SelectElement("validity"))
	assert.Equal(t, "ALPHANUMERIC", settings.FindElement("originatorSettings/originatorType").Text())
	assert.Equal(t, "2015-08-06+02:00", settings.FindElement("sendWindow/startDate").Text())
	assert.Equal(t, "12:00:00+02:00", settings.FindElement("sendWindow/startTime").Text())
	assert.Nil(t, settings.FindElement("sendWindow/stopDate"))

	params := settings.SelectElements("parameter")
	require.Len(t, params, 2)
	assert.Equal(t, "a", params[0].SelectElement("key").Text())
	assert.Equal(t, "2", params[1].SelectElement("value").Text())
}

func TestMessageWithoutSettingsJSON(t *testing.T) {
	data, err := json.Marshal(Message{Recipient: "+4741000000", Content: "test"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"recipient":"+4741000000","content":"test"}`, string(data))
}

func TestRequestClone(t *testing.T) {
	ref, price := "batch", 10
	req := &Request{
		BatchReference: &ref,
		Message: []Message{{
			Recipient: "+4741000000",
			Content:   "test",
			Price:     &price,
			Settings:  &Settings{Parameter: []Parameter{{"k", "v"}}},
		}},
	}
	c := req.Clone()
	*c.BatchReference = "changed"
	*c.Message[0].Price = 20
	c.Message[0].Settings.Parameter[0].Value = "changed"

	assert.Equal(t, "batch", *req.BatchReference)
	assert.Equal(t, 10, *req.Message[0].Price)
	assert.Equal(t, "v", req.Message[0].Settings.Parameter[0].Value)
}
