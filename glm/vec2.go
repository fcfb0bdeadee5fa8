package glm

type Vec2[T numeric] [2]T
