package handlers

import "promptimage/internal/domain"

type messageKey string

const (
	msgEmptyInput      messageKey = "empty_input"
	msgDegenerateInput messageKey = "degenerate_input"
	msgLowConfidence   messageKey = "low_confidence"
	msgTooShort        messageKey = "too_short"
	msgInvalidRequest  messageKey = "invalid_request"
	msgInternal        messageKey = "internal"
)

var messages = map[string]map[messageKey]string{
	"ko": {
		msgEmptyInput:      "프롬프트가 비어 있어요. 그리고 싶은 장면을 입력해 주세요.",
		msgDegenerateInput: "의미 있는 문장을 입력해 주세요. 기호나 자음, 모음만으로는 그림을 만들 수 없어요.",
		msgLowConfidence:   "입력하신 내용을 이해하지 못했어요. 조금 더 구체적으로 다시 적어 주세요.",
		msgTooShort:        "설명이 너무 짧아요. 장면을 조금 더 자세히 묘사해 주세요.",
		msgInvalidRequest:  "요청 형식이 올바르지 않아요.",
		msgInternal:        "문제가 발생했어요. 잠시 후 다시 시도해 주세요.",
	},
	"en": {
		msgEmptyInput:      "The prompt is empty. Describe the scene you want to see.",
		msgDegenerateInput: "That input doesn't look meaningful. Please write a real sentence.",
		msgLowConfidence:   "We couldn't understand that prompt. Please rephrase it more specifically.",
		msgTooShort:        "The description is too brief. Please add more detail.",
		msgInvalidRequest:  "The request body is not valid JSON.",
		msgInternal:        "Something went wrong. Please try again.",
	},
}

func message(locale string, key messageKey) string {
	if catalog, ok := messages[locale]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	return messages["ko"][key]
}

func reasonMessage(reason domain.ReasonCode) messageKey {
	switch reason {
	case domain.ReasonEmptyInput:
		return msgEmptyInput
	case domain.ReasonDegenerateInput:
		return msgDegenerateInput
	case domain.ReasonLowConfidenceTranslation:
		return msgLowConfidence
	case domain.ReasonResponseTooShort:
		return msgTooShort
	default:
		return msgInternal
	}
}
